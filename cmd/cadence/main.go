// Command cadence runs the built-in demonstration benchmarks. Real
// projects embed the harness instead: build your own registries, then
// call cli.Execute (or runner.GoByName directly) from your main.
package main

import (
	"crypto/sha256"
	"os"
	"sort"

	"github.com/wesleyorama2/cadence/bench"
	"github.com/wesleyorama2/cadence/internal/cli"
	"github.com/wesleyorama2/cadence/params"
	"github.com/wesleyorama2/cadence/report"
)

func main() {
	benchmarks := bench.NewRegistry()

	benchmarks.Register("baseline/noop", func(in bench.Input) (bench.Runner, error) {
		return func() error { return nil }, nil
	})

	benchmarks.Register("hash/sha256-4k", func(in bench.Input) (bench.Runner, error) {
		buf := make([]byte, 4096)
		for i := range buf {
			buf[i] = byte(i)
		}
		return func() error {
			sha256.Sum256(buf)
			return nil
		}, nil
	})

	benchmarks.Register("sort/ints", func(in bench.Input) (bench.Runner, error) {
		n, err := in.Params.GetInt("n", 1024)
		if err != nil {
			return nil, err
		}
		data := make([]int, n)
		for i := range data {
			data[i] = int(n) - i
		}
		return func() error {
			buf := make([]int, len(data))
			copy(buf, data)
			sort.Ints(buf)
			return nil
		}, nil
	})

	reporters := report.NewRegistry()
	reporters.Register("console", report.NewConsole(report.ConsoleConfig{}))
	reporters.Register("json", report.NewJSON(os.Stdout))

	types := params.NewRegistry()
	types.Register("n", params.Int64Ops())

	cli.Execute(cli.Options{
		Benchmarks: benchmarks,
		Reporters:  reporters,
		Types:      types,
	})
}
