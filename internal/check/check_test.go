package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kevininininin/Collage/internal/config"
)

// recorder captures log lines by level.
type recorder struct {
	lines map[string][]string
}

func newRecorder() *recorder { return &recorder{lines: map[string][]string{}} }

func (r *recorder) add(level, format string, args ...interface{}) {
	r.lines[level] = append(r.lines[level], fmt.Sprintf(format, args...))
}

func (r *recorder) Info(f string, a ...interface{})    { r.add("info", f, a...) }
func (r *recorder) Success(f string, a ...interface{}) { r.add("success", f, a...) }
func (r *recorder) Warn(f string, a ...interface{})    { r.add("warn", f, a...) }
func (r *recorder) Error(f string, a ...interface{})   { r.add("error", f, a...) }
func (r *recorder) Debug(v bool, f string, a ...interface{}) {
	if v {
		r.add("debug", f, a...)
	}
}

func TestRunCheck_AllPass(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "outputs", "stepA")

	rec := newRecorder()
	ok := RunCheck(&cfg, rec)

	assert.True(t, ok, "errors: %v warnings: %v", rec.lines["error"], rec.lines["warn"])
	assert.Empty(t, rec.lines["error"])
	joined := strings.Join(rec.lines["success"], "\n")
	for _, want := range []string{"PNG codec", "JPEG codec", "TIFF codec", "WebP codec", "EXIF orientation", "writable"} {
		assert.Contains(t, joined, want)
	}
}

func TestRunCheck_ReportsBadOutput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	cfg := config.DefaultConfig()
	cfg.OutputDir = file

	rec := newRecorder()
	assert.False(t, RunCheck(&cfg, rec))
	require.Len(t, rec.lines["warn"], 1)
	assert.Contains(t, rec.lines["warn"][0], "not a directory")
}

func TestCheckDeps(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name    string
		dir     string
		wantErr bool
	}{
		{"existing dir", base, false},
		{"missing nested dir", filepath.Join(base, "a", "b", "c"), false},
		{"regular file", file, true},
		{"below a regular file", filepath.Join(file, "sub"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.OutputDir = tt.dir
			err := CheckDeps(&cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutputNotWritable)
				return
			}
			assert.NoError(t, err)
		})
	}

	_, err := os.Stat(filepath.Join(base, "a"))
	assert.True(t, os.IsNotExist(err), "CheckDeps must not create directories")
}

func TestCheckDeps_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.OutputDir = dir
	require.NoError(t, CheckDeps(&cfg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheckDeps_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	cfg := config.DefaultConfig()
	cfg.DryRun = true

	cfg.OutputDir = filepath.Join(dir, "out")
	require.NoError(t, CheckDeps(&cfg))

	cfg.OutputDir = file
	assert.ErrorIs(t, CheckDeps(&cfg), ErrOutputNotWritable)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "dry run must not leave or create files")
}

func TestRoundTrip(t *testing.T) {
	for _, p := range codecChecks {
		assert.NoError(t, roundTrip(p.format), p.name)
	}
	assert.Error(t, roundTrip(imaging.Format(99)))
}

func TestWebPRegistered(t *testing.T) {
	assert.True(t, webpRegistered())
}
