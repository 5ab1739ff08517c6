package store

import (
	"context"

	"github.com/MKhiriev/go-keep-vault/models"
)

// VaultGateway is the persistence boundary for the vault file: unlocking an
// existing container, creating a fresh one and the crash-safe save pipeline.
type VaultGateway interface {
	// Open reads and decrypts the vault at path. A bad password or key
	// file surfaces as codec.ErrAuthenticationFailed; file-level failures
	// match ErrVaultIO.
	Open(path string, creds models.Credentials) (*models.Vault, error)

	// Create initialises a new vault file at path with an empty root group
	// named rootName and returns the in-memory vault. Fails with
	// ErrVaultExists when path is already occupied.
	Create(path, rootName string, creds models.Credentials) (*models.Vault, error)

	// Save serializes v and atomically replaces the file at path: the full
	// container is written to a temporary sibling, synced to durable
	// storage, then renamed over the destination. At every point before
	// the rename the destination holds its prior contents; a failure may
	// leave a stray temp file behind, never a half-written vault.
	Save(v *models.Vault, path string, creds models.Credentials) error
}

// AuditRepository records and lists vault operation events in the local
// audit database.
type AuditRepository interface {
	RecordEvent(ctx context.Context, event models.AuditEvent) error
	ListEvents(ctx context.Context, limit uint64) ([]models.AuditEvent, error)
	Close() error
}
