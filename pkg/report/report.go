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

// Package report aggregates and renders copy run outcomes
package report

import (
	"io"

	"github.com/racekit/stocopy/pkg/copier"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📊 Summary holds aggregate counts per outcome status
type Summary struct {
	Copied           int `yaml:"copied"`
	NoCarCode        int `yaml:"no_car_code"`
	NoMatchingFolder int `yaml:"no_matching_folder"`
	CopyFailed       int `yaml:"copy_failed"`
}

// 🧮 Summarize counts outcomes per status
func Summarize(outcomes []copier.Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Status {
		case copier.StatusCopied:
			s.Copied++
		case copier.StatusNoCarCode:
			s.NoCarCode++
		case copier.StatusNoMatchingFolder:
			s.NoMatchingFolder++
		case copier.StatusCopyFailed:
			s.CopyFailed++
		}
	}
	return s
}

// Total returns the number of processed files
func (s Summary) Total() int {
	return s.Copied + s.NoCarCode + s.NoMatchingFolder + s.CopyFailed
}

// Skipped returns the number of files skipped without a copy attempt
func (s Summary) Skipped() int {
	return s.NoCarCode + s.NoMatchingFolder
}

// 📄 Record is the serialized form of one outcome
type Record struct {
	File    string `yaml:"file"`
	CarCode string `yaml:"car_code,omitempty"`
	Folder  string `yaml:"folder,omitempty"`
	Status  string `yaml:"status"`
	Error   string `yaml:"error,omitempty"`
}

// 📦 runReport is the full machine-readable report document
type runReport struct {
	Summary Summary  `yaml:"summary"`
	Files   []Record `yaml:"files"`
}

// 📝 WriteYAML writes the outcome sequence and its summary as YAML
func WriteYAML(w io.Writer, outcomes []copier.Outcome) error {
	records := make([]Record, 0, len(outcomes))
	for _, o := range outcomes {
		record := Record{
			File:    o.File,
			CarCode: o.CarCode,
			Folder:  o.Folder,
			Status:  o.Status.String(),
		}
		if o.Err != nil {
			record.Error = o.Err.Error()
		}
		records = append(records, record)
	}

	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	if err := encoder.Encode(runReport{Summary: Summarize(outcomes), Files: records}); err != nil {
		return errors.Errorf("encoding report: %w", err)
	}

	return nil
}
