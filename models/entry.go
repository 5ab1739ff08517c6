package models

// Reserved field keys. These five carry conventional meaning and are read
// through dedicated accessors; any other key is a custom field. Matching is
// case-sensitive and exact.
const (
	FieldTitle    = "Title"
	FieldUserName = "UserName"
	FieldPassword = "Password"
	FieldURL      = "URL"
	FieldNotes    = "Notes"
)

// IsReservedField reports whether key is one of the five reserved keys.
func IsReservedField(key string) bool {
	switch key {
	case FieldTitle, FieldUserName, FieldPassword, FieldURL, FieldNotes:
		return true
	}
	return false
}

// Field is one named value of an entry.
type Field struct {
	Key   string
	Value Value
}

// Entry is a password record. Fields is an ordered mapping from field name
// to value: keys are unique per entry and insertion order is preserved.
// Entries have no children.
type Entry struct {
	UUID string

	Fields []Field

	// OTP is an opaque URI-form one-time-password provisioning string.
	// It is passed through without parsing.
	OTP string
}

// NodeUUID implements [Node].
func (e *Entry) NodeUUID() string { return e.UUID }

// Kind implements [Node].
func (e *Entry) Kind() NodeKind { return KindEntry }

// Get returns the value stored under key.
func (e *Entry) Get(key string) (Value, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Set stores value under key, replacing an existing field in place or
// appending a new one. Replacement keeps the field's position so custom
// field order survives updates.
func (e *Entry) Set(key string, value Value) {
	for i := range e.Fields {
		if e.Fields[i].Key == key {
			e.Fields[i].Value = value
			return
		}
	}
	e.Fields = append(e.Fields, Field{Key: key, Value: value})
}

// getString reads a field and materializes it as a string, with an
// empty-string default when the field is absent.
func (e *Entry) getString(key string) string {
	v, ok := e.Get(key)
	if !ok {
		return ""
	}
	return v.Reveal()
}

// Title returns the reserved Title field or "".
func (e *Entry) Title() string { return e.getString(FieldTitle) }

// UserName returns the reserved UserName field or "".
func (e *Entry) UserName() string { return e.getString(FieldUserName) }

// Password returns the reserved Password field or "".
func (e *Entry) Password() string { return e.getString(FieldPassword) }

// URL returns the reserved URL field or "".
func (e *Entry) URL() string { return e.getString(FieldURL) }

// Notes returns the reserved Notes field or "".
func (e *Entry) Notes() string { return e.getString(FieldNotes) }
