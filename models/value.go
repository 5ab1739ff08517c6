package models

// ValueKind discriminates the variants of [Value].
type ValueKind int

const (
	// ValuePlainText is an unprotected UTF-8 string field.
	ValuePlainText ValueKind = iota

	// ValueSensitiveText is a protected field. Its content is kept as an
	// opaque byte buffer and turned into a string only on demand, so that
	// decrypted secrets are not held in memory longer than necessary.
	ValueSensitiveText

	// ValueInlineBinary is binary content stored directly inside the entry.
	ValueInlineBinary

	// ValueBinaryRef is an index into the vault-level attachment pool.
	// The same pooled attachment may be referenced by several entries.
	ValueBinaryRef
)

// Value is a tagged union of the four field value variants an entry may hold.
// Exactly one payload field is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind

	// Text holds the payload for ValuePlainText.
	Text string

	// Secret holds the payload for ValueSensitiveText.
	Secret []byte

	// Bytes holds the payload for ValueInlineBinary.
	Bytes []byte

	// Ref holds the payload for ValueBinaryRef. It must resolve within
	// Vault.Attachments at conversion time; an out-of-range index is a
	// non-fatal resolution failure, not a corrupt-tree condition.
	Ref int
}

// PlainTextValue constructs a ValuePlainText.
func PlainTextValue(s string) Value {
	return Value{Kind: ValuePlainText, Text: s}
}

// SensitiveValue constructs a ValueSensitiveText from raw bytes.
func SensitiveValue(b []byte) Value {
	return Value{Kind: ValueSensitiveText, Secret: b}
}

// InlineBinaryValue constructs a ValueInlineBinary.
func InlineBinaryValue(b []byte) Value {
	return Value{Kind: ValueInlineBinary, Bytes: b}
}

// BinaryRefValue constructs a ValueBinaryRef pointing at index i of the
// vault attachment pool.
func BinaryRefValue(i int) Value {
	return Value{Kind: ValueBinaryRef, Ref: i}
}

// Reveal materializes the value as a plain string. For sensitive values this
// is the single point where the protected buffer becomes a string; callers
// should do this as late as possible.
func (v Value) Reveal() string {
	switch v.Kind {
	case ValueSensitiveText:
		return string(v.Secret)
	case ValuePlainText:
		return v.Text
	default:
		return ""
	}
}
