// Copyright 2026 racekit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package copier matches setup files to car folders and copies them
package copier

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/racekit/stocopy/pkg/setup"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the copier
type Options struct {
	// Source is the directory holding the setup files to distribute
	Source string
	// SetupsDir is the destination root whose subfolders are named by car code
	SetupsDir string
	// DryRun computes outcomes without performing any copy
	DryRun bool

	// ListFiles enumerates the eligible source files. Defaults to setup.List.
	ListFiles func(ctx context.Context, dir string) ([]setup.File, error)
	// ListFolders enumerates the destination folder names. Defaults to
	// reading the immediate subdirectories of SetupsDir.
	ListFolders func(dir string) ([]string, error)
	// CopyFile copies src to dst, overwriting dst if it exists. Defaults to
	// a plain filesystem copy.
	CopyFile func(src, dst string) error
}

// 🏭 New creates a new copier with the given options
func New(opts Options) (*Copier, error) {
	if opts.Source == "" {
		return nil, errors.Errorf("source directory is required")
	}
	if opts.SetupsDir == "" {
		return nil, errors.Errorf("setups directory is required")
	}
	if opts.ListFiles == nil {
		opts.ListFiles = setup.List
	}
	if opts.ListFolders == nil {
		opts.ListFolders = listFolders
	}
	if opts.CopyFile == nil {
		opts.CopyFile = copyFile
	}
	return &Copier{opts: opts}, nil
}

// 🎮 Copier implements the single-pass match-and-copy run
type Copier struct {
	opts Options
}

// 🏃 Run processes every eligible setup file once and returns one Outcome
// per file, in processing order. Per-file failures are recorded in the
// outcome and never abort the run; the returned error is non-nil only when
// the source or destination root cannot be listed at all, in which case no
// outcomes are produced.
func (c *Copier) Run(ctx context.Context) ([]Outcome, error) {
	logger := zerolog.Ctx(ctx)

	files, err := c.opts.ListFiles(ctx, c.opts.Source)
	if err != nil {
		return nil, errors.Errorf("reading setup files: %w", err)
	}

	names, err := c.opts.ListFolders(c.opts.SetupsDir)
	if err != nil {
		return nil, errors.Errorf("reading car folders: %w", err)
	}

	// Folder names are a fixed lookup table for the whole run. Exact,
	// case-sensitive match against the car code.
	folders := make(map[string]string, len(names))
	for _, name := range names {
		if _, ok := folders[name]; !ok {
			folders[name] = filepath.Join(c.opts.SetupsDir, name)
		}
	}

	logger.Debug().
		Int("files", len(files)).
		Int("folders", len(folders)).
		Bool("dry_run", c.opts.DryRun).
		Msg("starting copy run")

	outcomes := make([]Outcome, 0, len(files))
	for _, file := range files {
		outcomes = append(outcomes, c.processFile(ctx, file, folders))
	}

	return outcomes, nil
}

// 📄 processFile decides and performs the fate of a single setup file
func (c *Copier) processFile(ctx context.Context, file setup.File, folders map[string]string) Outcome {
	logger := zerolog.Ctx(ctx)

	code, ok := setup.CarCode(file.Name)
	if !ok {
		logger.Warn().Str("file", file.Name).Msg("filename carries no car code")
		return Outcome{File: file.Name, Status: StatusNoCarCode}
	}

	dir, ok := folders[code]
	if !ok {
		logger.Warn().Str("file", file.Name).Str("car_code", code).Msg("no matching car folder")
		return Outcome{File: file.Name, CarCode: code, Status: StatusNoMatchingFolder}
	}

	folder := filepath.Base(dir)
	if c.opts.DryRun {
		logger.Debug().Str("file", file.Name).Str("folder", folder).Msg("would copy setup file")
		return Outcome{File: file.Name, CarCode: code, Folder: folder, Status: StatusCopied}
	}

	if err := c.opts.CopyFile(file.Path, filepath.Join(dir, file.Name)); err != nil {
		logger.Error().Err(err).Str("file", file.Name).Str("folder", folder).Msg("copying setup file")
		return Outcome{File: file.Name, CarCode: code, Folder: folder, Status: StatusCopyFailed, Err: err}
	}

	logger.Debug().Str("file", file.Name).Str("folder", folder).Msg("copied setup file")
	return Outcome{File: file.Name, CarCode: code, Folder: folder, Status: StatusCopied}
}

// 📋 listFolders returns the names of the immediate subdirectories of dir
func listFolders(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("listing destination root %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// copyFile copies src to dst, truncating dst if it already exists. Car
// folders are never created here; a missing folder is a copy failure.
func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file content: %w", err)
	}

	return nil
}
