package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unbound-force/aliquot/internal/config"
	"github.com/unbound-force/aliquot/internal/report"
	"github.com/unbound-force/aliquot/internal/taxonomy"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func defaultCfg() *config.AliquotConfig { return config.DefaultConfig() }

// ---------------------------------------------------------------------------
// runAliquot tests
// ---------------------------------------------------------------------------

func TestRunAliquot_TextFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runAliquot(aliquotParams{
		args:   []string{"12,95", "1264460"},
		cfg:    defaultCfg(),
		stdout: &stdout,
		stderr: &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "12: Convergent [12, 16, 15, 9, 4, 3, 1]\n" +
		"95: Aspiring number [95, 25, 6]\n" +
		"1264460: Sociable number [1264460, 1547860, 1727636, 1305184]\n"
	if got := stdout.String(); got != want {
		t.Errorf("stdout mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunAliquot_JSONFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := defaultCfg()
	cfg.Format = "json"
	err := runAliquot(aliquotParams{
		args:   []string{"220"},
		cfg:    cfg,
		stdout: &stdout,
		stderr: &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &rec); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout.String())
	}
	if rec["kind"] != "AmicableNumber" || rec["name"] != "Amicable number" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestRunAliquot_InvalidFormat(t *testing.T) {
	cfg := defaultCfg()
	cfg.Format = "yaml"
	err := runAliquot(aliquotParams{
		args:   []string{"12"},
		cfg:    cfg,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error for invalid format")
	}
	if !strings.Contains(err.Error(), `invalid format "yaml"`) {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestRunAliquot_SumTakesPrecedence(t *testing.T) {
	var stdout bytes.Buffer
	err := runAliquot(aliquotParams{
		args:    []string{"10-12"},
		cfg:     defaultCfg(),
		sum:     true,
		lengths: true,
		stdout:  &stdout,
		stderr:  &bytes.Buffer{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "10 8\n11 1\n12 16\n" {
		t.Errorf("got %q", got)
	}
}

func TestRunAliquot_Lengths(t *testing.T) {
	var stdout bytes.Buffer
	err := runAliquot(aliquotParams{
		args:    []string{"6,562"},
		cfg:     defaultCfg(),
		lengths: true,
		stdout:  &stdout,
		stderr:  &bytes.Buffer{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "6 1\n562 3\n" {
		t.Errorf("got %q", got)
	}
}

func TestRunAliquot_InvalidRangeAbortsBeforeOutput(t *testing.T) {
	var stdout bytes.Buffer
	err := runAliquot(aliquotParams{
		args:   []string{"1-3", "10-5"},
		cfg:    defaultCfg(),
		stdout: &stdout,
		stderr: &bytes.Buffer{},
	})
	if !errors.Is(err, taxonomy.ErrInvalidRange) {
		t.Fatalf("err = %v, want invalid range", err)
	}
	if err.Error() != "Invalid range: 10 - 5" {
		t.Errorf("message = %q", err.Error())
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output, got %q", stdout.String())
	}
}

func TestRunAliquot_StatsToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := defaultCfg()
	cfg.Threads = 2
	err := runAliquot(aliquotParams{
		args:   []string{"1-20"},
		cfg:    cfg,
		stats:  true,
		stdout: &stdout,
		stderr: &stderr,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "HIT RATIO") {
		t.Errorf("expected stats table on stderr, got:\n%s", stderr.String())
	}
	if strings.Contains(stdout.String(), "HIT RATIO") {
		t.Error("stats table should not be written to stdout")
	}
	if n := strings.Count(stdout.String(), "\n"); n != 20 {
		t.Errorf("got %d result lines, want 20", n)
	}
}

func TestRunAliquot_VerboseLogsDebug(t *testing.T) {
	var stderr bytes.Buffer
	err := runAliquot(aliquotParams{
		args:    []string{"12"},
		cfg:     defaultCfg(),
		verbose: true,
		stdout:  &bytes.Buffer{},
		stderr:  &stderr,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"starting workers", "sequence converged to one", "cache stored"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("debug output missing %q:\n%s", want, stderr.String())
		}
	}
}

func TestRunAliquot_QuietByDefault(t *testing.T) {
	var stderr bytes.Buffer
	if err := runAliquot(aliquotParams{
		args:   []string{"1-30"},
		cfg:    defaultCfg(),
		stdout: &bytes.Buffer{},
		stderr: &stderr,
	}); err != nil {
		t.Fatal(err)
	}
	if stderr.Len() != 0 {
		t.Errorf("expected no diagnostics, got:\n%s", stderr.String())
	}
}

func TestRunAliquot_SumOverflow(t *testing.T) {
	cfg := defaultCfg()
	cfg.Bits = 16
	err := runAliquot(aliquotParams{
		args:   []string{"55440"},
		cfg:    cfg,
		sum:    true,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	})
	if !errors.Is(err, taxonomy.ErrOverflow) {
		t.Errorf("err = %v, want overflow", err)
	}
}

// ---------------------------------------------------------------------------
// loadConfig tests
// ---------------------------------------------------------------------------

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := loadConfig("", overrides{})
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if *cfg != *config.DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", *cfg)
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".aliquot.yaml")
	content := []byte("threads: 4\nbits: 32\nmax_value: \"5000\"\n")
	if err := os.WriteFile(cfgPath, content, 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg, err := loadConfig(cfgPath, overrides{threads: intPtr(2), format: strPtr("json")})
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.Threads != 2 {
		t.Errorf("threads = %d, want 2 (flag)", cfg.Threads)
	}
	if cfg.Bits != 32 || cfg.MaxValue != "5000" {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Format)
	}
	if cfg.Path != cfgPath {
		t.Errorf("Path = %q, want %q", cfg.Path, cfgPath)
	}
}

// TestLoadConfig_YAMLInvalidRejected verifies that an invalid value in
// the file is reported against the config file.
func TestLoadConfig_YAMLInvalidRejected(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".aliquot.yaml")
	if err := os.WriteFile(cfgPath, []byte("threads: 0\n"), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	_, err := loadConfig(cfgPath, overrides{})
	if err == nil {
		t.Fatal("expected error for threads: 0, got nil")
	}
	if !strings.Contains(err.Error(), "config file") {
		t.Errorf("error should mention 'config file', got: %s", err)
	}
}

// TestLoadConfig_FlagInvalidRejected verifies that an invalid flag
// value is rejected without blaming the config file.
func TestLoadConfig_FlagInvalidRejected(t *testing.T) {
	chdir(t, t.TempDir())
	tests := []struct {
		name string
		ov   overrides
		want string
	}{
		{"threads", overrides{threads: intPtr(0)}, "threads must be at least 1"},
		{"max steps", overrides{maxSteps: intPtr(-3)}, "max_steps must be at least 1"},
		{"cache size", overrides{cacheSize: intPtr(-1)}, "cache_size must not be negative"},
		{"bits", overrides{bits: intPtr(12)}, "bits must be"},
		{"format", overrides{format: strPtr("html")}, `invalid format "html"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig("", tt.ov)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %s, want it to contain %q", err, tt.want)
			}
			if strings.Contains(err.Error(), "config file") {
				t.Errorf("flag error should not mention 'config file': %s", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// command wiring tests
// ---------------------------------------------------------------------------

func TestRootCmd_ParsesFlags(t *testing.T) {
	chdir(t, t.TempDir())
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"-m", "100", "-c", "0", "--bits", "32", "30"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := stdout.String(); got != "30: Unknown sequence [30, 42, 54, 66, 78, 90]\n" {
		t.Errorf("got %q", got)
	}
}

func TestRootCmd_MaxStepsFlag(t *testing.T) {
	chdir(t, t.TempDir())
	var stdout bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"-n", "3", "12"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := stdout.String(); got != "12: Unknown sequence [12, 16, 15]\n" {
		t.Errorf("got %q", got)
	}
}

func TestRootCmd_Help(t *testing.T) {
	var stdout bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetArgs([]string{"-h"})
	if err := root.Execute(); err != nil {
		t.Fatalf("-h should not fail: %v", err)
	}
	for _, flag := range []string{"--max-steps", "--max-value", "--cache-size", "--lengths", "--threads", "--sum", "--verbose"} {
		if !strings.Contains(stdout.String(), flag) {
			t.Errorf("usage missing %s", flag)
		}
	}
}

func TestRootCmd_MissingFlagValue(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"12", "-t"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for -t without a value")
	}
}

func TestSchemaCmd(t *testing.T) {
	var stdout bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetArgs([]string{"schema"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(stdout.String()) != report.Schema {
		t.Error("schema output does not match report.Schema")
	}
}
