// Package models holds the shared data types of the vault: the group/entry
// tree, tagged field values, vault-level metadata and the attachment pool,
// plus the draft and display representations exchanged with callers.
package models

// Meta is vault-level metadata. Both fields are absent until the first
// recycle operation creates the bin, after which they persist for the life
// of the vault.
type Meta struct {
	// RecycleBinUUID designates which group is the recycle bin.
	// Empty means no bin exists yet.
	RecycleBinUUID string

	// RecycleBinEnabled records whether soft delete is in use.
	RecycleBinEnabled *bool
}

// PoolAttachment is one element of the vault-level attachment pool,
// referenced from entries by integer index via [ValueBinaryRef].
type PoolAttachment struct {
	Content []byte
}

// Vault is the full decrypted tree of groups and entries plus metadata.
type Vault struct {
	Root        *Group
	Meta        Meta
	Attachments []PoolAttachment
}

// NewVault returns a vault with an empty root group named name.
func NewVault(rootUUID, name string) *Vault {
	return &Vault{
		Root: &Group{UUID: rootUUID, Name: name},
	}
}

// Credentials unlock a vault. They are opaque to the core and forwarded
// unmodified to the codec; Password, KeyFile or both may be set.
type Credentials struct {
	Password string
	KeyFile  []byte
}
