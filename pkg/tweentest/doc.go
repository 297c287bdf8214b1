// Package tweentest drives tweens frame by frame under a fake clock.
//
// # Quick Start
//
//	func TestSlide(t *testing.T) {
//	    tester := tweentest.NewTesterWithT(t)
//	    node := scene.NewNode("box")
//	    tw, _ := tester.Registry().Attach(node, 0)
//	    tw.SetPosition(tween.Vec3{}, tween.Vec3{10, 0, 0}).SetDuration(0.5)
//	    tw.Play()
//
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if node.Position() != (tween.Vec3{10, 0, 0}) {
//	        t.Errorf("got %v", node.Position())
//	    }
//	}
//
// # Trace Snapshots
//
// Watch entities to record their values after every frame, then compare the
// recording against a golden file:
//
//	tester.Watch("box", node)
//	tester.PumpAndSettle(time.Second)
//	tester.Trace().MatchesFile(t, "testdata/slide.trace.json")
//
// Update golden files with:
//
//	TWEEN_UPDATE_SNAPSHOTS=1 go test ./...
package tweentest
