package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wesleyorama2/cadence/bench"
	"github.com/wesleyorama2/cadence/params"
	"github.com/wesleyorama2/cadence/report"
)

func testOptions() Options {
	benchmarks := bench.NewRegistry()
	benchmarks.Register("baseline/noop", func(in bench.Input) (bench.Runner, error) {
		return func() error { return nil }, nil
	})

	reporters := report.NewRegistry()
	reporters.Register("console", report.NewConsole(report.ConsoleConfig{Writer: &bytes.Buffer{}}))

	types := params.NewRegistry()
	types.Register("n", params.Int64Ops())

	return Options{Benchmarks: benchmarks, Reporters: reporters, Types: types}
}

func TestParseSweep(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    params.RunSpec
		wantErr bool
	}{
		{
			name:  "additive",
			input: "n:+:0:1:5",
			want:  params.RunSpec{Name: "n", Op: "+", Init: "0", Step: "1", Count: 5},
		},
		{
			name:  "multiplicative",
			input: "size:*:16:2:8",
			want:  params.RunSpec{Name: "size", Op: "*", Init: "16", Step: "2", Count: 8},
		},
		{
			name:    "too few fields",
			input:   "n:+:0:1",
			wantErr: true,
		},
		{
			name:    "bad count",
			input:   "n:+:0:1:many",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSweep(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseSweep(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSweep(%q) error: %v", tt.input, err)
			}
			if got.Name != tt.want.Name || got.Op != tt.want.Op ||
				got.Init != tt.want.Init || got.Step != tt.want.Step ||
				got.Count != tt.want.Count {
				t.Errorf("parseSweep(%q) = %+v, want %+v", tt.input, *got, tt.want)
			}
		})
	}
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newListCmd(testOptions())
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, want := range []string{"baseline/noop", "console", "n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := NewRootCmd(testOptions())

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	if !names["run"] || !names["list"] {
		t.Errorf("root subcommands = %v, want run and list", names)
	}
}
