// Package layout implements a constraint-driven single-axis box layout engine.
//
// An [Engine] owns an ordered set of items, each registered with a
// [Constraint] describing how the item is sized (percentage, absolute,
// square, ratio, or "rest of the space"), how it is aligned on the cross
// axis, and what margins surround it. Given a parent region the engine
// resolves concrete integer bounds for every item and pushes them to the
// host through [Item.SetBounds].
//
// Constraints can be built programmatically with [New] or parsed from the
// 11-token wire format with [Parse]. Types are re-exported through the
// root elayout package for public consumption.
//
// The main entry points are [Engine.Layout], which places all items inside
// a region, and [Engine.PreferredSize], which reports the aggregate size
// the items want.
package layout
