package codec

import (
	"fmt"

	"github.com/MKhiriev/go-keep-vault/models"
)

// Wire DTOs for the JSON payload inside the container. The model tree uses
// an interface for nodes, so the payload carries an explicit kind
// discriminator instead.

const (
	wireKindGroup = "group"
	wireKindEntry = "entry"
)

const (
	wireValuePlain     = "plain"
	wireValueProtected = "protected"
	wireValueBinary    = "binary"
	wireValueRef       = "ref"
)

type wireVault struct {
	Root        *wireGroup `json:"root"`
	Meta        wireMeta   `json:"meta"`
	Attachments [][]byte   `json:"attachments,omitempty"`
}

type wireMeta struct {
	RecycleBinUUID    string `json:"recycle_bin_uuid,omitempty"`
	RecycleBinEnabled *bool  `json:"recycle_bin_enabled,omitempty"`
}

type wireNode struct {
	Kind  string     `json:"kind"`
	Group *wireGroup `json:"group,omitempty"`
	Entry *wireEntry `json:"entry,omitempty"`
}

type wireGroup struct {
	UUID     string     `json:"uuid"`
	Name     string     `json:"name"`
	IconID   *int       `json:"icon_id,omitempty"`
	Children []wireNode `json:"children,omitempty"`
}

type wireEntry struct {
	UUID   string      `json:"uuid"`
	Fields []wireField `json:"fields,omitempty"`
	OTP    string      `json:"otp,omitempty"`
}

type wireField struct {
	Key  string `json:"key"`
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	Data []byte `json:"data,omitempty"`
	Ref  int    `json:"ref,omitempty"`
}

func fromModel(v *models.Vault) wireVault {
	out := wireVault{
		Root: fromModelGroup(v.Root),
		Meta: wireMeta{
			RecycleBinUUID:    v.Meta.RecycleBinUUID,
			RecycleBinEnabled: v.Meta.RecycleBinEnabled,
		},
	}
	for _, att := range v.Attachments {
		out.Attachments = append(out.Attachments, att.Content)
	}
	return out
}

func fromModelGroup(g *models.Group) *wireGroup {
	out := &wireGroup{UUID: g.UUID, Name: g.Name, IconID: g.IconID}
	for _, n := range g.Children {
		switch child := n.(type) {
		case *models.Group:
			out.Children = append(out.Children, wireNode{Kind: wireKindGroup, Group: fromModelGroup(child)})
		case *models.Entry:
			out.Children = append(out.Children, wireNode{Kind: wireKindEntry, Entry: fromModelEntry(child)})
		}
	}
	return out
}

func fromModelEntry(e *models.Entry) *wireEntry {
	out := &wireEntry{UUID: e.UUID, OTP: e.OTP}
	for _, f := range e.Fields {
		wf := wireField{Key: f.Key}
		switch f.Value.Kind {
		case models.ValuePlainText:
			wf.Kind = wireValuePlain
			wf.Text = f.Value.Text
		case models.ValueSensitiveText:
			wf.Kind = wireValueProtected
			wf.Data = f.Value.Secret
		case models.ValueInlineBinary:
			wf.Kind = wireValueBinary
			wf.Data = f.Value.Bytes
		case models.ValueBinaryRef:
			wf.Kind = wireValueRef
			wf.Ref = f.Value.Ref
		}
		out.Fields = append(out.Fields, wf)
	}
	return out
}

func (w wireVault) toModel() (*models.Vault, error) {
	if w.Root == nil {
		return nil, fmt.Errorf("%w: payload has no root group", ErrMalformedContainer)
	}

	root, err := w.Root.toModel()
	if err != nil {
		return nil, err
	}

	out := &models.Vault{
		Root: root,
		Meta: models.Meta{
			RecycleBinUUID:    w.Meta.RecycleBinUUID,
			RecycleBinEnabled: w.Meta.RecycleBinEnabled,
		},
	}
	for _, content := range w.Attachments {
		out.Attachments = append(out.Attachments, models.PoolAttachment{Content: content})
	}
	return out, nil
}

func (g *wireGroup) toModel() (*models.Group, error) {
	out := &models.Group{UUID: g.UUID, Name: g.Name, IconID: g.IconID}
	for _, n := range g.Children {
		switch n.Kind {
		case wireKindGroup:
			if n.Group == nil {
				return nil, fmt.Errorf("%w: group node without group payload", ErrMalformedContainer)
			}
			child, err := n.Group.toModel()
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, child)
		case wireKindEntry:
			if n.Entry == nil {
				return nil, fmt.Errorf("%w: entry node without entry payload", ErrMalformedContainer)
			}
			out.Children = append(out.Children, n.Entry.toModel())
		default:
			return nil, fmt.Errorf("%w: unknown node kind %q", ErrMalformedContainer, n.Kind)
		}
	}
	return out, nil
}

func (e *wireEntry) toModel() *models.Entry {
	out := &models.Entry{UUID: e.UUID, OTP: e.OTP}
	for _, f := range e.Fields {
		var v models.Value
		switch f.Kind {
		case wireValueProtected:
			v = models.SensitiveValue(f.Data)
		case wireValueBinary:
			v = models.InlineBinaryValue(f.Data)
		case wireValueRef:
			v = models.BinaryRefValue(f.Ref)
		default:
			// Unknown field kinds degrade to plain text rather than
			// rejecting the whole container.
			v = models.PlainTextValue(f.Text)
		}
		out.Fields = append(out.Fields, models.Field{Key: f.Key, Value: v})
	}
	return out
}
