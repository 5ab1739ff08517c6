package vault

import (
	"github.com/MKhiriev/go-keep-vault/models"
)

// RecycleBinName is the display name given to the lazily created bin group.
const RecycleBinName = "Recycle Bin"

// RecycleBinIconID is the conventional trash icon code for the bin group.
const RecycleBinIconID = 43

// Recycle soft-deletes the node with the given UUID and kind by moving it
// under the recycle-bin group. The bin is created lazily on first use and
// registered in the vault metadata. The node is relocated, never copied:
// detaching it from its current parent and re-attaching it under the bin is
// a single ownership transfer.
//
// Returns ErrGuardViolation when uuid names the bin itself, and a
// NotFoundError when the node does not exist; in both cases the tree is
// unchanged (in particular, a missing node does not leave behind a freshly
// created empty bin).
func (t *Tree) Recycle(uuid string, kind models.NodeKind) error {
	if bin := t.vault.Meta.RecycleBinUUID; bin != "" && bin == uuid {
		return ErrGuardViolation
	}

	// Locate before any structural change so failure has zero side effects.
	if _, _, ok := t.findParent(uuid, kind); !ok {
		return notFound(uuid, kind)
	}

	bin := t.ensureRecycleBin()

	n, _ := t.detach(uuid, kind)
	bin.Children = append(bin.Children, n)

	t.log.Debug().Str("uuid", uuid).Stringer("kind", kind).Msg("node moved to recycle bin")
	return nil
}

// EmptyRecycleBin drops every node currently inside the bin by truncating
// its children sequence in one step. It succeeds unconditionally: with no
// bin registered, or an already empty one, the call is a no-op.
func (t *Tree) EmptyRecycleBin() {
	binUUID := t.vault.Meta.RecycleBinUUID
	if binUUID == "" {
		return
	}
	bin, ok := t.FindGroup(binUUID)
	if !ok {
		return
	}

	bin.Children = nil
	t.log.Debug().Str("uuid", binUUID).Msg("recycle bin emptied")
}

// ensureRecycleBin returns the vault's recycle-bin group, creating it under
// the root and registering its UUID and the enabled flag in the metadata on
// first use. The registration persists for the life of the vault.
func (t *Tree) ensureRecycleBin() *models.Group {
	if binUUID := t.vault.Meta.RecycleBinUUID; binUUID != "" {
		if bin, ok := t.FindGroup(binUUID); ok {
			return bin
		}
	}

	icon := RecycleBinIconID
	bin := &models.Group{
		UUID:   t.uuids.Generate(),
		Name:   RecycleBinName,
		IconID: &icon,
	}
	t.vault.Root.Children = append(t.vault.Root.Children, bin)

	enabled := true
	t.vault.Meta.RecycleBinUUID = bin.UUID
	t.vault.Meta.RecycleBinEnabled = &enabled

	t.log.Debug().Str("uuid", bin.UUID).Msg("recycle bin created")
	return bin
}
