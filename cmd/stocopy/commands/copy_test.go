package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/racekit/stocopy/cmd/stocopy/opts"
	"github.com/racekit/stocopy/pkg/report"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// 🧪 newTestOpts builds RootOpts over temp source and setups directories
func newTestOpts(t *testing.T, folders ...string) (context.Context, *opts.RootOpts) {
	t.Helper()

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	o := &opts.RootOpts{
		Source:     t.TempDir(),
		SetupsDir:  t.TempDir(),
		UserLogger: report.NewUserLogger(ctx),
	}
	for _, folder := range folders {
		require.NoError(t, os.Mkdir(filepath.Join(o.SetupsDir, folder), 0755))
	}
	return ctx, o
}

// 🧪 TestRunCopy tests the copy command end to end
func TestRunCopy(t *testing.T) {
	t.Run("copies_and_writes_report", func(t *testing.T) {
		ctx, o := newTestOpts(t, "MX5")
		require.NoError(t, os.WriteFile(filepath.Join(o.Source, "VRS_25S1DS_MX5_setup1.sto"), []byte("content"), 0644))
		reportPath := filepath.Join(t.TempDir(), "run.yaml")

		require.NoError(t, runCopy(ctx, o, reportPath, false))

		copied, err := os.ReadFile(filepath.Join(o.SetupsDir, "MX5", "VRS_25S1DS_MX5_setup1.sto"))
		require.NoError(t, err)
		assert.Equal(t, "content", string(copied))

		data, err := os.ReadFile(reportPath)
		require.NoError(t, err)
		var decoded struct {
			Summary report.Summary  `yaml:"summary"`
			Files   []report.Record `yaml:"files"`
		}
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, 1, decoded.Summary.Copied)
		require.Len(t, decoded.Files, 1)
		assert.Equal(t, "copied", decoded.Files[0].Status)
	})

	t.Run("dry_run_writes_nothing", func(t *testing.T) {
		ctx, o := newTestOpts(t, "MX5")
		require.NoError(t, os.WriteFile(filepath.Join(o.Source, "VRS_25S1DS_MX5_setup1.sto"), []byte("content"), 0644))

		require.NoError(t, runCopy(ctx, o, "", true))

		entries, err := os.ReadDir(filepath.Join(o.SetupsDir, "MX5"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("unmatched_files_are_not_an_error", func(t *testing.T) {
		ctx, o := newTestOpts(t, "MX5")
		require.NoError(t, os.WriteFile(filepath.Join(o.Source, "VRS_25S1DS_GT3_setup2.sto"), []byte("x"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(o.Source, "badname.sto"), []byte("x"), 0644))

		assert.NoError(t, runCopy(ctx, o, "", false))
	})

	t.Run("missing_source_aborts", func(t *testing.T) {
		ctx, o := newTestOpts(t, "MX5")
		o.Source = filepath.Join(o.Source, "nope")

		err := runCopy(ctx, o, "", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "running copy")
	})
}
