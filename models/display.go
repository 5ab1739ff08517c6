package models

// Attachment is a resolved binary attachment: either inline entry content
// or a pooled attachment looked up by index.
type Attachment struct {
	Filename string
	Data     []byte
}

// CustomField is one non-reserved text field of an entry.
type CustomField struct {
	Key   string
	Value string

	// Concealed marks a protected custom field on a display entry. Its
	// Value stays empty there; the plain text is resolved on demand so
	// decrypted secrets are not materialized eagerly. Unused on drafts.
	Concealed bool
}

// DisplayEntry is the presentation-ready form of an entry: reserved fields
// pulled out into plain strings, custom fields classified by value variant
// and attachments fully resolved.
type DisplayEntry struct {
	UUID         string
	Title        string
	UserName     string
	Password     string
	URL          string
	Notes        string
	CustomFields []CustomField
	OTP          string
	Attachments  []Attachment
}

// DisplayGroup is the presentation-ready form of a group subtree.
type DisplayGroup struct {
	UUID         string
	Name         string
	IsRecycleBin bool
	Groups       []DisplayGroup
	Entries      []DisplayEntry
}

// EntryDraft carries caller-supplied entry content for add and update
// operations. The engine assigns UUIDs; drafts never carry one for create.
type EntryDraft struct {
	Title        string
	UserName     string
	Password     string
	URL          string
	Notes        string
	CustomFields []CustomField
}

// GroupDraft carries caller-supplied group content for add operations.
type GroupDraft struct {
	Name   string
	IconID *int
}
