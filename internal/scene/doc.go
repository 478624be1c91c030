// Package scene reads node trees from TOML, YAML and JSON documents, builds
// them through the flex binding and writes laid-out frames back out.
//
// A document has one root item. Every item may set any layout property by
// its snake_case name; enum properties take their names ("center",
// "row_reverse", "wrap"). Unset properties keep the engine defaults.
//
//	[root]
//	name = "root"
//	width = 123.0
//	height = 456.0
//	justify_content = "center"
//	align_items = "center"
//
//	[[root.children]]
//	name = "box"
//	width = 100.0
//	height = 100.0
package scene
