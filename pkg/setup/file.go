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

// Package setup provides parsing and discovery of iRacing setup files
package setup

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Pattern matches eligible setup files. The extension is compared
// case-insensitively, so names are lowercased before matching.
const Pattern = "*.sto"

// carCodeIndex is the position of the car code in an underscore-delimited
// setup filename (e.g. VRS_25S1DS_MX5_setup1.sto).
const carCodeIndex = 2

// 📄 File is one candidate setup file discovered in the source directory.
type File struct {
	Name string // raw filename, e.g. "VRS_25S1DS_MX5_setup1.sto"
	Path string // full path to the file
}

// 🔍 CarCode extracts the car code from a setup filename. The filename stem
// (name without extension) is split on underscores and the third token is
// the car code. ok is false when the stem has too few tokens; the returned
// code may be empty when the name contains consecutive underscores.
func CarCode(name string) (string, bool) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	tokens := strings.Split(stem, "_")
	if len(tokens) <= carCodeIndex {
		return "", false
	}
	return tokens[carCodeIndex], true
}

// 📋 List enumerates the setup files in dir, in directory order. Regular
// files whose name does not match Pattern are silently ignored.
func List(ctx context.Context, dir string) ([]File, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("listing source directory %s: %w", dir, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, err := doublestar.Match(Pattern, strings.ToLower(entry.Name()))
		if err != nil {
			return nil, errors.Errorf("matching pattern %q: %w", Pattern, err)
		}
		if !matched {
			logger.Debug().Str("file", entry.Name()).Msg("skipping non-setup file")
			continue
		}

		files = append(files, File{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	logger.Debug().Int("count", len(files)).Str("dir", dir).Msg("found setup files")
	return files, nil
}
