// Package testing provides deterministic harnesses for dial tests.
//
// # Quick Start
//
// Create a tester for a profile, trigger a reveal and step time:
//
//	func TestReveal(t *testing.T) {
//	    tester := dialtest.NewDialTesterWithT(t, dial.DefaultProfile())
//	    tester.Trigger()
//
//	    tester.Advance(400 * time.Millisecond)
//	    if tester.Phase() != reveal.PhaseHolding {
//	        t.Errorf("phase = %v, want holding", tester.Phase())
//	    }
//	}
//
// # Manual Scheduling
//
// [ManualScheduler] records timelines instead of running them, so a test
// can start, progress and complete each one explicitly:
//
//	sched := dialtest.NewManualScheduler()
//	a := reveal.New(sched, geom, reveal.DefaultTiming, apply)
//	a.Trigger()
//	sched.Last().Complete()
//
// # Snapshot Testing
//
// Capture and compare the render tree against a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/noon.snapshot.json")
//
// Update snapshots with:
//
//	DAYDIAL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import dialtest "github.com/go-drift/daydial/pkg/testing"
package testing
