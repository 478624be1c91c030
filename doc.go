// Package flex provides a shadow tree of layout nodes over a handle-based
// flexbox engine.
//
// Each Node owns one engine handle and caches its own properties. Property
// writes only mark a group dirty; CommitProps or Layout pushes each dirty
// group with one batched engine call. Tree edits (Add, Insert, Remove) are
// mirrored into the engine immediately, and Destroy releases a whole root
// subtree.
//
//	e := flex.NewEngine()
//	root, _ := flex.New(e,
//		flex.WithSize(123, 456),
//		flex.WithJustifyContent(flex.AlignCenter),
//		flex.WithAlignItems(flex.AlignCenter),
//	)
//	child, _ := flex.New(e, flex.WithSize(100, 100))
//	_ = root.Add(child)
//	_ = root.Layout()
//	f, _ := child.Frame() // {X: 11.5, Y: 178, Width: 100, Height: 100}
//
// Users import this single package for the complete public API: nodes,
// property identifiers, enum types and the engine contract.
package flex
