package vault

import (
	"github.com/MKhiriev/go-keep-vault/models"
)

// ConvertEntry maps a raw entry into its display form. Reserved fields are
// read through the dedicated accessors with an empty-string default; the
// remaining fields are classified by value variant:
//
//   - plain text becomes a custom field;
//   - sensitive text becomes a concealed custom field whose plain text is
//     only resolved on demand via [Tree.RevealField] (the password is the
//     one protected field materialized here);
//   - inline binary becomes a resolved attachment keyed by field name;
//   - a binary reference is looked up in the vault attachment pool, and an
//     index that does not resolve is logged and skipped, never fatal.
func (t *Tree) ConvertEntry(e *models.Entry) models.DisplayEntry {
	out := models.DisplayEntry{
		UUID:     e.UUID,
		Title:    e.Title(),
		UserName: e.UserName(),
		Password: e.Password(),
		URL:      e.URL(),
		Notes:    e.Notes(),
		OTP:      e.OTP,
	}

	for _, f := range e.Fields {
		if models.IsReservedField(f.Key) {
			continue
		}

		switch f.Value.Kind {
		case models.ValuePlainText:
			out.CustomFields = append(out.CustomFields, models.CustomField{Key: f.Key, Value: f.Value.Text})
		case models.ValueSensitiveText:
			out.CustomFields = append(out.CustomFields, models.CustomField{Key: f.Key, Concealed: true})
		case models.ValueInlineBinary:
			out.Attachments = append(out.Attachments, models.Attachment{Filename: f.Key, Data: f.Value.Bytes})
		case models.ValueBinaryRef:
			att, err := t.resolvePoolAttachment(f.Key, f.Value.Ref)
			if err != nil {
				t.log.Warn().Err(err).Str("entry", e.UUID).Str("field", f.Key).Int("ref", f.Value.Ref).
					Msg("skipping unresolvable attachment reference")
				continue
			}
			out.Attachments = append(out.Attachments, att)
		}
	}

	return out
}

// resolvePoolAttachment looks up index ref in the vault-level attachment
// pool. An out-of-range index yields ErrInvalidAttachmentRef.
func (t *Tree) resolvePoolAttachment(filename string, ref int) (models.Attachment, error) {
	if ref < 0 || ref >= len(t.vault.Attachments) {
		return models.Attachment{}, ErrInvalidAttachmentRef
	}
	return models.Attachment{Filename: filename, Data: t.vault.Attachments[ref].Content}, nil
}

// RevealField resolves a concealed custom field of the entry identified by
// uuid to plain text. This is the on-demand path for sensitive fields that
// ConvertEntry deliberately leaves unmaterialized.
func (t *Tree) RevealField(uuid, key string) (string, error) {
	entry, ok := t.FindEntry(uuid)
	if !ok {
		return "", notFound(uuid, models.KindEntry)
	}
	v, ok := entry.Get(key)
	if !ok {
		return "", nil
	}
	return v.Reveal(), nil
}

// ConvertGroup maps a group subtree into its display form. Descent is
// bounded by maxTreeDepth so a malformed, pathologically nested tree cannot
// exhaust the call stack; anything deeper is dropped with a warning.
func (t *Tree) ConvertGroup(g *models.Group) models.DisplayGroup {
	return t.convertGroup(g, 0)
}

func (t *Tree) convertGroup(g *models.Group, depth int) models.DisplayGroup {
	out := models.DisplayGroup{
		UUID:         g.UUID,
		Name:         g.Name,
		IsRecycleBin: g.UUID != "" && g.UUID == t.vault.Meta.RecycleBinUUID,
	}

	if depth >= maxTreeDepth {
		t.log.Warn().Str("uuid", g.UUID).Int("depth", depth).Msg("group nesting exceeds depth bound, children dropped")
		return out
	}

	for _, n := range g.Children {
		switch child := n.(type) {
		case *models.Group:
			out.Groups = append(out.Groups, t.convertGroup(child, depth+1))
		case *models.Entry:
			out.Entries = append(out.Entries, t.ConvertEntry(child))
		}
	}
	return out
}
