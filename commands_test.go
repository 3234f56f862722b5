package main

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/brennerm/slashgrid/internal/grid"
)

// executeCommand runs the root command with fresh flag values.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile = ""
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLabelsCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "escalates precision",
			args: []string{"labels", "--min", "0", "--max", "1"},
			want: "1.0\n0.8\n0.5\n0.3\n0\n",
		},
		{
			name: "custom thousands separator",
			args: []string{"labels", "--min", "0", "--max", "1000000", "--ticks", "3", "--thousands-sep", " "},
			want: "1 000 000\n500 000\n0\n",
		},
		{
			name: "round policy",
			args: []string{"labels", "--min", "-2000", "--max", "2000", "--precision", "round"},
			want: "2,000\n1,000\n0\n-1,000\n-2,000\n",
		},
		{
			name: "decimal separator",
			args: []string{"labels", "--min", "0", "--max", "2.5", "--ticks", "2", "--precision", "2", "--decimal-sep", ","},
			want: "2,50\n0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := executeCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLabelsCommandErrors(t *testing.T) {
	if _, err := executeCommand(t, "labels", "--min", "5", "--max", "5"); !errors.Is(err, grid.ErrRangeTooNarrow) {
		t.Fatalf("expected ErrRangeTooNarrow, got %v", err)
	}
	if _, err := executeCommand(t, "labels", "--ticks", "1"); !errors.Is(err, grid.ErrTooFewTicks) {
		t.Fatalf("expected ErrTooFewTicks, got %v", err)
	}
	if _, err := executeCommand(t, "labels", "--min", "2", "--max", "1"); !errors.Is(err, grid.ErrInvertedRange) {
		t.Fatalf("expected ErrInvertedRange, got %v", err)
	}
	if _, err := executeCommand(t, "labels", "--precision", "fine"); err == nil {
		t.Fatalf("expected error for an invalid precision")
	}
	if _, err := executeCommand(t, "labels", "--url", "http://127.0.0.1:1"); err == nil {
		t.Fatalf("expected error for --url without --metric")
	}
}

func TestLabelsCommandSummaryAndTable(t *testing.T) {
	got, err := executeCommand(t, "labels", "--min", "0", "--max", "1", "--summary", "--table", "--height", "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"precision 1", "5 labels", "label", "0.8", "100.00"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestLabelsCommandFromEnvironment(t *testing.T) {
	t.Setenv("SLASHGRID_TICKS", "3")
	got, err := executeCommand(t, "labels", "--min", "0", "--max", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "1.0\n0.5\n0\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLabelsCommandFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slashgrid.yaml")
	if err := os.WriteFile(path, []byte("precision: round\nmin: -2000\nmax: 2000\nticks: 3\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	got, err := executeCommand(t, "--config", path, "labels")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "2,000\n0\n-2,000\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	// Flags win over the file.
	got, err = executeCommand(t, "--config", path, "labels", "--ticks", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "2,000\n1,000\n") {
		t.Fatalf("expected five labels, got %q", got)
	}
}

func TestLabelsCommandFromMetrics(t *testing.T) {
	server := metricsServer(t, http.StatusOK, "latency{path=\"/\"} 10\nlatency{path=\"/api\"} 20\n")

	got, err := executeCommand(t, "labels", "--url", server.URL, "--metric", "latency")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10..20 widens to 9..22.
	if want := "22\n19\n16\n12\n9\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenderCommand(t *testing.T) {
	got, err := executeCommand(t, "render",
		"--min", "0", "--max", "2000",
		"--width", "40", "--height", "8",
		"--points", "3", "--from", "2024-03-01T00:00:00Z", "--span", "48h", "--date-format", "%b %d",
		"--no-color", "--border=false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"2,000", "1,500", "Mar 01", "Mar 03", "─"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
	if rows := strings.Count(got, "\n"); rows != 9 {
		t.Fatalf("expected 9 rows, got %d:\n%s", rows, got)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	if _, err := executeCommand(t, "render", "--min", "1", "--max", "1"); !errors.Is(err, grid.ErrRangeTooNarrow) {
		t.Fatalf("expected ErrRangeTooNarrow, got %v", err)
	}
	if _, err := executeCommand(t, "render", "--from", "yesterday"); err == nil {
		t.Fatalf("expected error for an invalid --from")
	}
	if _, err := executeCommand(t, "render", "--width", "0"); err == nil {
		t.Fatalf("expected error for an empty frame")
	}
}

func TestGridConfigBaseline(t *testing.T) {
	configFile = ""
	cmd := &cobra.Command{Use: "test"}
	addGridFlags(cmd.Flags())
	cmd.Flags().Bool("grid", true, "")
	cmd.Flags().Bool("baseline", false, "")
	if err := cmd.Flags().Parse([]string{"--grid=false", "--baseline"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := newConfig(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := gridConfig(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Show || !cfg.ShowBaseline {
		t.Fatalf("expected baseline only, got %+v", cfg)
	}
	if cfg.NumYLabels != 5 || cfg.MaxPrecision != grid.DefaultMaxPrecision {
		t.Fatalf("expected flag defaults, got %+v", cfg)
	}
}
