// Package layout implements an in-process flexbox engine behind the
// handle-based call contract used by the root flex package.
//
// Items live in an append-only arena and are addressed by [Handle]. Property
// groups are pushed with batched setters ([Engine.SetSize],
// [Engine.SetEnumPropsBatch], ...), the tree is edited by index
// ([Engine.Add], [Engine.Insert], [Engine.Remove]) and [Engine.Layout]
// computes parent-relative frames for a whole subtree.
//
// Supported properties: row/column directions (and their reverses), the
// eight align values for justify_content, align_content, align_items and
// align_self, padding, margin, grow, shrink, basis, order, absolute
// positioning and wrap/wrap_reverse lines.
//
// Types are re-exported through the root flex package for public consumption.
package layout
