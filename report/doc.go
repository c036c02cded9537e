// Package report defines the reporter protocol and the built-in
// reporters.
//
// A Reporter is the sink for a run's ordered lifecycle notifications.
// Two implementations ship with the harness:
//
//   - Console: human-readable progress and statistics, with colors
//     when writing to a terminal
//   - JSON: a machine-readable document with raw samples and
//     analysis, written when the suite completes
//
// Reporters are selected by name through a Registry:
//
//	reporters := report.NewRegistry()
//	reporters.Register("console", report.NewConsole(report.ConsoleConfig{}))
//	reporters.Register("json", report.NewJSON(os.Stdout))
package report
