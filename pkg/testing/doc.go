// Package testing provides deterministic frame-driven test helpers for
// clockface.
//
// # Quick Start
//
// Create a tester, build a view on its scheduler, and pump frames:
//
//	func TestClockSettles(t *testing.T) {
//	    tester := clocktest.NewFrameTesterWithT(t)
//	    view := clockface.NewView(clockface.DefaultStyle(1), clockface.EngineOptions{
//	        Scheduler: tester.Scheduler(),
//	    })
//	    view.AnimateToTime(2, 30)
//
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if got := view.Engine().MinuteRotation(); got != 900 {
//	        t.Errorf("minute rotation = %v, want 900", got)
//	    }
//	}
//
// # Time Control
//
// The tester owns a [FakeClock]. Time only moves when the test advances it,
// either directly through Clock().Advance or through PumpFor and
// PumpAndSettle, which step one 16ms frame at a time.
//
// # Display Lists
//
// [RecordOps] paints a [rendering.Canvas] client into a serializable list of
// [DisplayOp] values for assertions about what was drawn.
package testing
