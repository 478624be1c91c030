package flex

import "strings"

// Group is a bitmask of property groups. Each group is pushed to the engine
// with one batched call.
type Group uint8

const (
	GroupSize Group = 1 << iota
	GroupLocation
	GroupPadding
	GroupMargin
	GroupEnums
	GroupMisc
)

var groupNames = []string{"size", "location", "padding", "margin", "enums", "misc"}

// String lists the set groups joined by "|", or "none".
func (g Group) String() string {
	if g == 0 {
		return "none"
	}
	var parts []string
	for i, name := range groupNames {
		if g&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Has reports whether every group in other is set in g.
func (g Group) Has(other Group) bool {
	return g&other == other
}

// markDirty stores v for p and ORs the property's group into the pending
// set. Writing the stored value is a no-op. Only a commit clears bits.
func (n *Node) markDirty(p Prop, v float64) {
	if sameValue(n.vals[p], v) {
		return
	}
	n.vals[p] = v
	n.dirty |= propTable[p].group
}

// IsDirty reports whether the node has uncommitted property changes.
// A destroyed node is never dirty.
func (n *Node) IsDirty() bool {
	return n.dirty != 0
}

// DirtyGroups returns the groups waiting for the next commit.
func (n *Node) DirtyGroups() (Group, error) {
	if err := n.checkLive("dirty groups"); err != nil {
		return 0, err
	}
	return n.dirty, nil
}
