package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-keep-vault/models"
)

// VaultService is the application-facing surface over one unlocked vault.
// It owns the vault's reader-writer lock: every mutation takes the
// exclusive path and completes fully before the call returns, every read
// takes the shared path, and persistence is the only operation that may be
// offloaded to a background worker.
type VaultService interface {
	// Unlock opens the vault file at path with the given credentials and
	// makes it the service's current vault.
	Unlock(ctx context.Context, path string, creds models.Credentials) error

	// Create initialises a fresh vault file at path and makes it current.
	Create(ctx context.Context, path, rootName string, creds models.Credentials) error

	// Render converts the whole tree into its display form.
	Render() (models.DisplayGroup, error)

	// GetEntry returns the display form of one entry.
	GetEntry(uuid string) (models.DisplayEntry, error)

	// RevealField resolves a concealed custom field to plain text on
	// demand.
	RevealField(uuid, key string) (string, error)

	// IsInsideRecycleBin reports whether uuid is the recycle bin or lives
	// under it. UIs use this to decide between the soft-delete and
	// permanent-delete affordances.
	IsInsideRecycleBin(uuid string) (bool, error)

	// AddEntry appends a new entry built from draft to the group
	// parentUUID and returns the fresh UUID.
	AddEntry(ctx context.Context, parentUUID string, draft models.EntryDraft) (string, error)

	// AddGroup appends a new empty group built from draft to the group
	// parentUUID and returns the fresh UUID.
	AddGroup(ctx context.Context, parentUUID string, draft models.GroupDraft) (string, error)

	// UpdateEntry replaces the fields of entry uuid with the draft's
	// values.
	UpdateEntry(ctx context.Context, uuid string, draft models.EntryDraft) error

	// DeleteEntry soft-deletes an entry into the recycle bin.
	DeleteEntry(ctx context.Context, uuid string) error

	// DeleteGroup soft-deletes a group (and its whole subtree) into the
	// recycle bin.
	DeleteGroup(ctx context.Context, uuid string) error

	// DeleteEntryPermanently removes an entry from the tree for good.
	DeleteEntryPermanently(ctx context.Context, uuid string) error

	// DeleteGroupPermanently removes a group subtree from the tree for
	// good.
	DeleteGroupPermanently(ctx context.Context, uuid string) error

	// EmptyRecycleBin drops everything inside the bin. Idempotent.
	EmptyRecycleBin(ctx context.Context) error

	// Save synchronously runs the atomic save pipeline under a shared
	// lock. At most one save may be in flight: a second caller gets
	// ErrLockContention instead of a concurrent writer to the temp path.
	Save(ctx context.Context) error

	// Dirty reports whether the vault has unsaved changes. A successful
	// Save clears the flag; a failed one leaves it set so the save job
	// retries on its next tick.
	Dirty() bool
}

// SaveJob flushes pending changes of a VaultService in the background,
// coalescing mutation bursts into single saves. It satisfies
// [workers.Worker]: Run starts the job with its default interval.
type SaveJob interface {
	Run()
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
