package models

// NodeKind selects which node types a tree operation applies to.
type NodeKind int

const (
	// KindAny matches both groups and entries.
	KindAny NodeKind = iota

	// KindGroup matches groups only.
	KindGroup

	// KindEntry matches entries only.
	KindEntry
)

// String returns the lowercase name of the kind, used in log fields and
// error messages.
func (k NodeKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindEntry:
		return "entry"
	default:
		return "node"
	}
}

// Node is either a *Group or an *Entry. The tree is a strict hierarchy:
// every node is owned by exactly one parent group's Children sequence, and
// UUIDs are unique across the whole vault.
type Node interface {
	// NodeUUID returns the node's identifier in canonical 36-character form.
	NodeUUID() string

	// Kind reports whether the node is a group or an entry.
	Kind() NodeKind
}

// Group is a folder in the vault tree. Children holds groups and entries
// interleaved; their order is display order and is preserved across
// mutation. A group is "the recycle bin" only by UUID comparison against
// [Meta.RecycleBinUUID], never by an intrinsic flag.
type Group struct {
	UUID     string
	Name     string
	IconID   *int
	Children []Node
}

// NodeUUID implements [Node].
func (g *Group) NodeUUID() string { return g.UUID }

// Kind implements [Node].
func (g *Group) Kind() NodeKind { return KindGroup }

// Groups returns the group children in document order.
func (g *Group) Groups() []*Group {
	out := make([]*Group, 0, len(g.Children))
	for _, n := range g.Children {
		if child, ok := n.(*Group); ok {
			out = append(out, child)
		}
	}
	return out
}

// Entries returns the entry children in document order.
func (g *Group) Entries() []*Entry {
	out := make([]*Entry, 0, len(g.Children))
	for _, n := range g.Children {
		if child, ok := n.(*Entry); ok {
			out = append(out, child)
		}
	}
	return out
}
