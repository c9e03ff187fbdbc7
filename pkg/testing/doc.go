// Package testing provides a harness for exercising controls without a
// native host: a ControlTester that stands in for the windowing layer, a
// fake clock for deterministic animation timing, and pump helpers that
// mimic the host's turn structure. Import it as easeltest to avoid
// clashing with the standard library:
//
//	import easeltest "github.com/go-drift/easel/pkg/testing"
package testing
