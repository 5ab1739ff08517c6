package validators

import (
	"context"

	"github.com/MKhiriev/go-keep-vault/models"
)

const (
	FieldGroupName    = "group_name"
	FieldGroupIcon    = "group_icon"
	FieldCustomFields = "custom_fields"
)

// DraftValidator enforces the structural rules on entry and group drafts
// before they reach the tree: group names are required, icon identifiers are
// non-negative, and custom field keys are non-empty, unique, and never
// collide with the reserved fields.
type DraftValidator struct {
}

func NewDraftValidator() Validator {
	return &DraftValidator{}
}

func (v *DraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EntryDraft:
		return v.validateEntryDraft(ctx, value, fields...)
	case *models.EntryDraft:
		return v.validateEntryDraft(ctx, *value, fields...)

	case models.GroupDraft:
		return v.validateGroupDraft(ctx, value, fields...)
	case *models.GroupDraft:
		return v.validateGroupDraft(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DraftValidator) validateEntryDraft(_ context.Context, draft models.EntryDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCustomFields}
	}

	for _, f := range fields {
		switch f {
		case FieldCustomFields:
			seen := make(map[string]struct{}, len(draft.CustomFields))
			for _, cf := range draft.CustomFields {
				if cf.Key == "" {
					return ErrEmptyFieldKey
				}
				if models.IsReservedField(cf.Key) {
					return ErrReservedFieldKey
				}
				if _, dup := seen[cf.Key]; dup {
					return ErrDuplicateFieldKey
				}
				seen[cf.Key] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DraftValidator) validateGroupDraft(_ context.Context, draft models.GroupDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGroupName, FieldGroupIcon}
	}

	for _, f := range fields {
		switch f {
		case FieldGroupName:
			if draft.Name == "" {
				return ErrEmptyGroupName
			}
		case FieldGroupIcon:
			if draft.IconID != nil && *draft.IconID < 0 {
				return ErrInvalidIconID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
