package report_test

import (
	"bytes"
	"testing"

	"github.com/racekit/stocopy/pkg/copier"
	"github.com/racekit/stocopy/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🧪 TestSummarize tests aggregate counting
func TestSummarize(t *testing.T) {
	outcomes := []copier.Outcome{
		{File: "a.sto", Status: copier.StatusCopied},
		{File: "b.sto", Status: copier.StatusCopied},
		{File: "c.sto", Status: copier.StatusNoCarCode},
		{File: "d.sto", Status: copier.StatusNoMatchingFolder},
		{File: "e.sto", Status: copier.StatusCopyFailed, Err: errors.New("disk full")},
	}

	s := report.Summarize(outcomes)

	assert.Equal(t, 2, s.Copied)
	assert.Equal(t, 1, s.NoCarCode)
	assert.Equal(t, 1, s.NoMatchingFolder)
	assert.Equal(t, 1, s.CopyFailed)
	assert.Equal(t, 3, s.Skipped())
	assert.Equal(t, 5, s.Total())
}

// 🧪 TestWriteYAML tests the machine-readable report encoding
func TestWriteYAML(t *testing.T) {
	outcomes := []copier.Outcome{
		{File: "VRS_25S1DS_MX5_setup1.sto", CarCode: "MX5", Folder: "MX5", Status: copier.StatusCopied},
		{File: "badname.sto", Status: copier.StatusNoCarCode},
		{File: "VRS_25S1DS_GT3_setup2.sto", CarCode: "GT3", Folder: "GT3", Status: copier.StatusCopyFailed, Err: errors.New("permission denied")},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, outcomes))

	var decoded struct {
		Summary report.Summary  `yaml:"summary"`
		Files   []report.Record `yaml:"files"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, 1, decoded.Summary.Copied)
	assert.Equal(t, 1, decoded.Summary.NoCarCode)
	assert.Equal(t, 1, decoded.Summary.CopyFailed)

	require.Len(t, decoded.Files, 3)
	assert.Equal(t, report.Record{
		File:    "VRS_25S1DS_MX5_setup1.sto",
		CarCode: "MX5",
		Folder:  "MX5",
		Status:  "copied",
	}, decoded.Files[0])
	assert.Equal(t, "no_car_code", decoded.Files[1].Status)
	assert.Empty(t, decoded.Files[1].CarCode)
	assert.Equal(t, "permission denied", decoded.Files[2].Error)
}

// 🧪 TestWriteYAMLEmptyRun tests encoding a run with no eligible files
func TestWriteYAMLEmptyRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, nil))

	var decoded struct {
		Summary report.Summary  `yaml:"summary"`
		Files   []report.Record `yaml:"files"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Zero(t, decoded.Summary.Total())
	assert.Empty(t, decoded.Files)
}
