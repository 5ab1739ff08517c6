// Package vault implements the in-memory tree engine of the secret store:
// UUID-based lookup and traversal, structural mutation (add, update, delete),
// the recycle-bin soft-delete state machine, and conversion of raw entries
// into display form with attachment resolution.
//
// All mutations locate their target before touching the tree, so a failed
// operation leaves the vault exactly as it was. The package performs no I/O
// and no cryptography; persistence lives in internal/store and the container
// format in internal/codec.
package vault

import (
	"github.com/MKhiriev/go-keep-vault/internal/logger"
	"github.com/MKhiriev/go-keep-vault/internal/utils"
	"github.com/MKhiriev/go-keep-vault/models"
)

// maxTreeDepth bounds descent into pathologically nested trees so that a
// malformed vault cannot exhaust the stack during recursive conversion.
const maxTreeDepth = 128

// Tree wraps a vault and implements the traversal and mutation operations
// over its group/entry hierarchy. Tree itself is not goroutine-safe; the
// service layer serializes access through its lock.
type Tree struct {
	vault *models.Vault
	uuids *utils.UUIDGenerator
	log   *logger.Logger
}

// NewTree creates a Tree over v. Fresh node UUIDs come from gen.
func NewTree(v *models.Vault, gen *utils.UUIDGenerator, log *logger.Logger) *Tree {
	return &Tree{vault: v, uuids: gen, log: log}
}

// Vault returns the underlying vault.
func (t *Tree) Vault() *models.Vault { return t.vault }

func matchKind(n models.Node, kind models.NodeKind) bool {
	return kind == models.KindAny || n.Kind() == kind
}

// Find performs a depth-first pre-order search from the root and returns
// the first node whose UUID and kind match, in document order. UUIDs are
// unique within a valid vault, so at most one match can exist; on a
// corrupted tree with duplicates the first match wins.
func (t *Tree) Find(uuid string, kind models.NodeKind) (models.Node, bool) {
	stack := []models.Node{t.vault.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if matchKind(n, kind) && n.NodeUUID() == uuid {
			return n, true
		}
		if g, ok := n.(*models.Group); ok {
			// Push in reverse so the first child is visited first.
			for i := len(g.Children) - 1; i >= 0; i-- {
				stack = append(stack, g.Children[i])
			}
		}
	}
	return nil, false
}

// FindGroup is Find restricted to groups, with a typed result.
func (t *Tree) FindGroup(uuid string) (*models.Group, bool) {
	n, ok := t.Find(uuid, models.KindGroup)
	if !ok {
		return nil, false
	}
	return n.(*models.Group), true
}

// FindEntry is Find restricted to entries, with a typed result.
func (t *Tree) FindEntry(uuid string) (*models.Entry, bool) {
	n, ok := t.Find(uuid, models.KindEntry)
	if !ok {
		return nil, false
	}
	return n.(*models.Entry), true
}

// IsDescendantOf reports whether ancestorUUID names a group and
// candidateUUID is found anywhere in that group's subtree (the subtree
// root included).
func (t *Tree) IsDescendantOf(candidateUUID, ancestorUUID string) bool {
	ancestor, ok := t.FindGroup(ancestorUUID)
	if !ok {
		return false
	}

	stack := []models.Node{ancestor}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.NodeUUID() == candidateUUID {
			return true
		}
		if g, ok := n.(*models.Group); ok {
			for i := len(g.Children) - 1; i >= 0; i-- {
				stack = append(stack, g.Children[i])
			}
		}
	}
	return false
}

// IsInsideRecycleBin reports whether uuid is the recycle bin itself or
// lives anywhere under it. With no bin registered in the vault metadata
// the answer is always false.
func (t *Tree) IsInsideRecycleBin(uuid string) bool {
	binUUID := t.vault.Meta.RecycleBinUUID
	if binUUID == "" {
		return false
	}
	if binUUID == uuid {
		return true
	}
	return t.IsDescendantOf(uuid, binUUID)
}

// findParent locates the group whose children currently hold the node with
// the given UUID and kind, returning the parent and the child's position.
// The search is depth-first in document order, so on a corrupted tree with
// duplicates the first occurrence is the one reported.
func (t *Tree) findParent(uuid string, kind models.NodeKind) (*models.Group, int, bool) {
	stack := []*models.Group{t.vault.Root}
	for len(stack) > 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i, child := range g.Children {
			if matchKind(child, kind) && child.NodeUUID() == uuid {
				return g, i, true
			}
		}
		for i := len(g.Children) - 1; i >= 0; i-- {
			if child, ok := g.Children[i].(*models.Group); ok {
				stack = append(stack, child)
			}
		}
	}
	return nil, 0, false
}

// detach removes the node with the given UUID and kind from its parent's
// children with a single structural edit and returns it. Ownership of the
// returned node passes to the caller.
func (t *Tree) detach(uuid string, kind models.NodeKind) (models.Node, bool) {
	parent, i, ok := t.findParent(uuid, kind)
	if !ok {
		return nil, false
	}
	n := parent.Children[i]
	parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
	return n, true
}
