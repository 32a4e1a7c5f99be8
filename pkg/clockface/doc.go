// Package clockface animates the hands of an analog clock face.
//
// The package is built in three layers:
//
//   - [Engine] owns one [HandState] and one [animation.ValueAnimator] per
//     hand and turns a change of [ClockTime] into forward rotation of both
//     hands. Hour and minute hands always start and stop together.
//
//   - [Drawable] paints the face, rim and hands onto a [rendering.Canvas]
//     at the engine's current rotations. It implements [Paintable] and
//     [Animatable].
//
//   - [View] is the host-facing widget: it validates hours and minutes,
//     owns the [Style], and forwards listener registration.
//
// # Rotation
//
// Rotation is measured in degrees clockwise from twelve o'clock. Each
// elapsed minute turns the minute hand 6° and the hour hand 0.5°. Deltas
// are the absolute minute difference between the previous and the new
// time, so hands only ever move forward; setting an earlier time sweeps
// forward by the difference rather than turning back. Rotations
// accumulate and are never wrapped, which keeps interrupted animations
// from losing angle.
//
// # Frames
//
// Nothing happens between frames. The host advances animations by calling
// [animation.Scheduler.Step] once per frame on the goroutine that owns
// the view, then repaints when the view's invalidator fires:
//
//	scheduler := animation.NewScheduler(nil)
//	view := clockface.NewView(clockface.DefaultStyle(1), clockface.EngineOptions{
//	    Scheduler:  scheduler,
//	    Invalidate: func() { needsPaint = true },
//	})
//	view.SetBounds(rendering.RectFromLTWH(0, 0, 256, 256))
//	if err := view.AnimateToTime(2, 30); err != nil {
//	    return err
//	}
//	for view.IsRunning() {
//	    scheduler.Step()
//	    view.Paint(canvas)
//	}
package clockface
