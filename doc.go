// Package frames is a small toolkit for drawing with nested 2D coordinate
// systems.
//
// The core is backend-independent: affine transforms ([Affine]), a transform
// stack ([TransformStack]), a tree of reference frames ([Frame]) and an
// independently controlled viewpoint ([Eye]). Drawing goes through an
// immediate-mode cursor ([Canvas]) that emits primitives to a [Surface]. The
// window sub-package provides an [Ebitengine] surface; the snapshot
// sub-package renders to image and vector files with [canvas].
//
// # Quick start
//
// A [Sketch] builds its frames in Setup and renders them in Draw. The
// simplest way to run one is window.Run:
//
//	sk, _ := sketches.Lookup("scene-graph")
//	window.Run(sk, frames.DefaultConfig(), window.RunConfig{Title: "frames"})
//
// # Frames
//
// Every frame holds a local transform relative to its parent. Rendering
// pushes the local transform, draws the frame's content in the resulting
// coordinate system, renders the children in order and pops, so siblings
// never see each other's transforms:
//
//	world := frames.NewFrame("world", frames.Identity)
//	l1 := world.AddChild(frames.NewFrame("l1",
//		frames.Translate(400, 40).Rotate(math.Pi/8), content))
//	err := frames.RenderFrame(scene.Canvas(d.Screen()), world)
//
// # The eye
//
// An [Eye] places a viewport marker in the world with its forward transform
// T(p)·R(θ)·S(s) and re-renders the world through its inverse into an
// off-screen layer, which is how the minimap sketch shows what the eye sees.
//
// # Configuration
//
// Tunables live in [Config]; [LoadConfig] reads TOML on top of
// [DefaultConfig].
//
// [Ebitengine]: https://ebitengine.org
// [canvas]: https://github.com/tdewolff/canvas
package frames
