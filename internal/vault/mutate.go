package vault

import (
	"github.com/MKhiriev/go-keep-vault/models"
)

// AddEntry creates a new entry from draft and appends it to the children of
// the group identified by parentUUID. The engine allocates the UUID; drafts
// never carry one. Returns the new entry's UUID, or a NotFoundError when no
// such group exists, in which case the tree is unchanged.
func (t *Tree) AddEntry(parentUUID string, draft models.EntryDraft) (string, error) {
	parent, ok := t.FindGroup(parentUUID)
	if !ok {
		return "", notFound(parentUUID, models.KindGroup)
	}

	entry := &models.Entry{UUID: t.uuids.Generate()}
	applyEntryDraft(entry, draft)

	parent.Children = append(parent.Children, entry)

	t.log.Debug().Str("uuid", entry.UUID).Str("parent", parentUUID).Msg("entry added")
	return entry.UUID, nil
}

// AddGroup creates a new empty group from draft under the group identified
// by parentUUID. Same contract as AddEntry.
func (t *Tree) AddGroup(parentUUID string, draft models.GroupDraft) (string, error) {
	parent, ok := t.FindGroup(parentUUID)
	if !ok {
		return "", notFound(parentUUID, models.KindGroup)
	}

	group := &models.Group{
		UUID:   t.uuids.Generate(),
		Name:   draft.Name,
		IconID: draft.IconID,
	}
	parent.Children = append(parent.Children, group)

	t.log.Debug().Str("uuid", group.UUID).Str("parent", parentUUID).Msg("group added")
	return group.UUID, nil
}

// UpdateEntry overwrites the fields of the entry identified by uuid with
// the draft's values. Each field is fully replaced, not merged; fields the
// draft does not mention keep their current value and position. Returns a
// NotFoundError when the UUID is absent, leaving the tree unchanged.
func (t *Tree) UpdateEntry(uuid string, draft models.EntryDraft) error {
	entry, ok := t.FindEntry(uuid)
	if !ok {
		return notFound(uuid, models.KindEntry)
	}

	applyEntryDraft(entry, draft)

	t.log.Debug().Str("uuid", uuid).Msg("entry updated")
	return nil
}

// DeletePermanently removes the node with the given UUID and kind from the
// tree with a single structural detach. This applies equally to nodes
// currently inside the recycle bin; there is no recovery path afterwards.
func (t *Tree) DeletePermanently(uuid string, kind models.NodeKind) error {
	if _, ok := t.detach(uuid, kind); !ok {
		return notFound(uuid, kind)
	}

	t.log.Debug().Str("uuid", uuid).Stringer("kind", kind).Msg("node deleted permanently")
	return nil
}

// applyEntryDraft writes the five reserved fields and all custom fields of
// draft into entry. The password and concealed custom fields go in as
// protected values; everything else is plain text. Set replaces in place,
// so field order is stable.
func applyEntryDraft(entry *models.Entry, draft models.EntryDraft) {
	entry.Set(models.FieldTitle, models.PlainTextValue(draft.Title))
	entry.Set(models.FieldUserName, models.PlainTextValue(draft.UserName))
	entry.Set(models.FieldPassword, models.SensitiveValue([]byte(draft.Password)))
	entry.Set(models.FieldURL, models.PlainTextValue(draft.URL))
	entry.Set(models.FieldNotes, models.PlainTextValue(draft.Notes))

	for _, f := range draft.CustomFields {
		if f.Concealed {
			entry.Set(f.Key, models.SensitiveValue([]byte(f.Value)))
			continue
		}
		entry.Set(f.Key, models.PlainTextValue(f.Value))
	}
}
