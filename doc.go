// Package pinwheel is a radial selection widget for [Ebitengine].
//
// Pinwheel lays out items as angular slices around a center point and fuses
// pointer motion, discrete key presses, and analog/digital controller input
// into a single confirmed selection. Rendering is left to the caller: the
// package exposes the slice geometry, the highlighted index, and transition
// events, and a presenter draws them however it likes.
//
// # Quick start
//
// Create a [Menu], wire an [InputSampler] into your game's Update, and draw
// from [Menu.Slices] and [Menu.Highlighted]:
//
//	menu, err := pinwheel.NewMenu(pinwheel.Config{
//		Items: []pinwheel.Item{
//			{Label: "Terminal", Action: pinwheel.Action{Kind: pinwheel.ActionRun, Command: "term"}},
//			{Label: "Tasks", Action: pinwheel.Action{Kind: pinwheel.ActionTaskSwitch}},
//		},
//		Radius:       120,
//		CenterRadius: 24,
//		Position:     pinwheel.Vec2{X: 320, Y: 240},
//		Executor:     myExecutor,
//		Tasks:        myTaskProvider,
//	})
//	sampler := pinwheel.NewInputSampler(menu)
//
//	func (g *Game) Update() error {
//		sampler.Sample()
//		menu.Update(1.0 / float32(ebiten.TPS()))
//		return nil
//	}
//
// # Geometry
//
// [LayoutSlices] divides the circle into equal half-open angular intervals
// starting at the top and proceeding clockwise in screen space. [HitTest],
// [SliceAtPoint], [SliceAtAngle], and [SliceFromStick] classify points,
// angles, and stick vectors against that layout; [NextSliceClockwise] and
// [NextSliceCounterClockwise] step the highlight discretely. All of these
// are pure functions usable without a Menu.
//
// # Interaction
//
// The Menu runs open, navigate, confirm/cancel, and close transitions, plus
// a nested sub-mode that browses a dynamically supplied task list before
// final dispatch. Confirmed items either enter that sub-mode or go to the
// external [Executor]; [Menu.OpenForResult] instead reports the outcome to
// the caller and suppresses execution.
//
// All menu mutation belongs on one goroutine, normally the Ebitengine
// update loop. The [Menu.InjectClick] family and [ScriptRunner] feed
// synthetic input through the same paths for automated testing.
//
// [Ebitengine]: https://ebitengine.org
package pinwheel
