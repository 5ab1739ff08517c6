// Package service wires the tree engine to persistence and enforces the
// concurrency model: a reader-writer lock over the vault, synchronous
// mutations on the exclusive path, and a single-flight save pipeline on the
// shared path.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-keep-vault/internal/logger"
	"github.com/MKhiriev/go-keep-vault/internal/store"
	"github.com/MKhiriev/go-keep-vault/internal/utils"
	"github.com/MKhiriev/go-keep-vault/internal/validators"
	"github.com/MKhiriev/go-keep-vault/internal/vault"
	"github.com/MKhiriev/go-keep-vault/models"
)

type vaultService struct {
	gateway  store.VaultGateway
	audit    store.AuditRepository // optional, nil disables the audit trail
	validate validators.Validator
	uuids    *utils.UUIDGenerator
	logger   *logger.Logger

	// mu guards the tree and the path/credentials of the current vault.
	// Mutations hold it exclusively; reads and the save pipeline hold it
	// shared, so lookups may proceed during an in-flight save while any
	// mutation waits until the save completes.
	mu    sync.RWMutex
	tree  *vault.Tree
	path  string
	creds models.Credentials

	// saving is the single-flight gate of the save pipeline: the gateway
	// does not deduplicate concurrent writers to the temp path, so a second
	// save request while one is running is rejected with ErrLockContention.
	saving atomic.Bool

	// dirty marks unsaved changes for the background save job.
	dirty atomic.Bool
}

// NewVaultService constructs a [VaultService] over the given gateway.
// audit may be nil to disable the local audit trail.
func NewVaultService(gateway store.VaultGateway, audit store.AuditRepository, gen *utils.UUIDGenerator, log *logger.Logger) VaultService {
	return &vaultService{
		gateway:  gateway,
		audit:    audit,
		validate: validators.NewDraftValidator(),
		uuids:    gen,
		logger:   log,
	}
}

// Unlock implements [VaultService].
func (s *vaultService) Unlock(ctx context.Context, path string, creds models.Credentials) error {
	v, err := s.gateway.Open(path, creds)
	if err != nil {
		return fmt.Errorf("unlock vault: %w", err)
	}

	s.mu.Lock()
	s.tree = vault.NewTree(v, s.uuids, s.logger)
	s.path = path
	s.creds = creds
	s.dirty.Store(false)
	s.mu.Unlock()

	s.recordAudit(ctx, models.AuditEvent{Op: "unlock", Detail: path})
	return nil
}

// Create implements [VaultService].
func (s *vaultService) Create(ctx context.Context, path, rootName string, creds models.Credentials) error {
	v, err := s.gateway.Create(path, rootName, creds)
	if err != nil {
		return fmt.Errorf("create vault: %w", err)
	}

	s.mu.Lock()
	s.tree = vault.NewTree(v, s.uuids, s.logger)
	s.path = path
	s.creds = creds
	s.dirty.Store(false)
	s.mu.Unlock()

	s.recordAudit(ctx, models.AuditEvent{Op: "create", Detail: path})
	return nil
}

// Render implements [VaultService].
func (s *vaultService) Render() (models.DisplayGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tree == nil {
		return models.DisplayGroup{}, ErrNoVaultLoaded
	}
	return s.tree.ConvertGroup(s.tree.Vault().Root), nil
}

// GetEntry implements [VaultService].
func (s *vaultService) GetEntry(uuid string) (models.DisplayEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tree == nil {
		return models.DisplayEntry{}, ErrNoVaultLoaded
	}
	entry, ok := s.tree.FindEntry(uuid)
	if !ok {
		return models.DisplayEntry{}, &vault.NotFoundError{UUID: uuid, Kind: models.KindEntry}
	}
	return s.tree.ConvertEntry(entry), nil
}

// RevealField implements [VaultService].
func (s *vaultService) RevealField(uuid, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tree == nil {
		return "", ErrNoVaultLoaded
	}
	return s.tree.RevealField(uuid, key)
}

// IsInsideRecycleBin implements [VaultService].
func (s *vaultService) IsInsideRecycleBin(uuid string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tree == nil {
		return false, ErrNoVaultLoaded
	}
	return s.tree.IsInsideRecycleBin(uuid), nil
}

// AddEntry implements [VaultService].
func (s *vaultService) AddEntry(ctx context.Context, parentUUID string, draft models.EntryDraft) (string, error) {
	if err := s.validate.Validate(ctx, draft); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree == nil {
		return "", ErrNoVaultLoaded
	}
	uuid, err := s.tree.AddEntry(parentUUID, draft)
	if err != nil {
		return "", err
	}

	s.dirty.Store(true)
	s.recordAudit(ctx, models.AuditEvent{Op: "add_entry", NodeUUID: uuid, Kind: models.KindEntry.String()})
	return uuid, nil
}

// AddGroup implements [VaultService].
func (s *vaultService) AddGroup(ctx context.Context, parentUUID string, draft models.GroupDraft) (string, error) {
	if err := s.validate.Validate(ctx, draft); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree == nil {
		return "", ErrNoVaultLoaded
	}
	uuid, err := s.tree.AddGroup(parentUUID, draft)
	if err != nil {
		return "", err
	}

	s.dirty.Store(true)
	s.recordAudit(ctx, models.AuditEvent{Op: "add_group", NodeUUID: uuid, Kind: models.KindGroup.String()})
	return uuid, nil
}

// UpdateEntry implements [VaultService].
func (s *vaultService) UpdateEntry(ctx context.Context, uuid string, draft models.EntryDraft) error {
	if err := s.validate.Validate(ctx, draft); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree == nil {
		return ErrNoVaultLoaded
	}
	if err := s.tree.UpdateEntry(uuid, draft); err != nil {
		return err
	}

	s.dirty.Store(true)
	s.recordAudit(ctx, models.AuditEvent{Op: "update_entry", NodeUUID: uuid, Kind: models.KindEntry.String()})
	return nil
}

// DeleteEntry implements [VaultService].
func (s *vaultService) DeleteEntry(ctx context.Context, uuid string) error {
	return s.recycle(ctx, uuid, models.KindEntry)
}

// DeleteGroup implements [VaultService].
func (s *vaultService) DeleteGroup(ctx context.Context, uuid string) error {
	return s.recycle(ctx, uuid, models.KindGroup)
}

func (s *vaultService) recycle(ctx context.Context, uuid string, kind models.NodeKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree == nil {
		return ErrNoVaultLoaded
	}
	if err := s.tree.Recycle(uuid, kind); err != nil {
		return err
	}

	s.dirty.Store(true)
	s.recordAudit(ctx, models.AuditEvent{Op: "recycle", NodeUUID: uuid, Kind: kind.String()})
	return nil
}

// DeleteEntryPermanently implements [VaultService].
func (s *vaultService) DeleteEntryPermanently(ctx context.Context, uuid string) error {
	return s.deletePermanently(ctx, uuid, models.KindEntry)
}

// DeleteGroupPermanently implements [VaultService].
func (s *vaultService) DeleteGroupPermanently(ctx context.Context, uuid string) error {
	return s.deletePermanently(ctx, uuid, models.KindGroup)
}

func (s *vaultService) deletePermanently(ctx context.Context, uuid string, kind models.NodeKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree == nil {
		return ErrNoVaultLoaded
	}
	if err := s.tree.DeletePermanently(uuid, kind); err != nil {
		return err
	}

	s.dirty.Store(true)
	s.recordAudit(ctx, models.AuditEvent{Op: "delete_permanently", NodeUUID: uuid, Kind: kind.String()})
	return nil
}

// EmptyRecycleBin implements [VaultService].
func (s *vaultService) EmptyRecycleBin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree == nil {
		return ErrNoVaultLoaded
	}
	s.tree.EmptyRecycleBin()

	s.dirty.Store(true)
	s.recordAudit(ctx, models.AuditEvent{Op: "empty_recycle_bin"})
	return nil
}

// Save implements [VaultService]. Serialization and file I/O run under the
// shared lock, so reads proceed while the save is in flight and mutations
// queue up behind it.
func (s *vaultService) Save(ctx context.Context) error {
	if !s.saving.CompareAndSwap(false, true) {
		return ErrLockContention
	}
	defer s.saving.Store(false)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tree == nil {
		return ErrNoVaultLoaded
	}
	if err := s.gateway.Save(s.tree.Vault(), s.path, s.creds); err != nil {
		return err
	}

	s.dirty.Store(false)
	s.recordAudit(ctx, models.AuditEvent{Op: "save", Detail: s.path})
	return nil
}

// Dirty implements [VaultService].
func (s *vaultService) Dirty() bool {
	return s.dirty.Load()
}

// recordAudit appends an event to the audit trail. Auditing is best effort:
// a failure is logged and never propagates into the operation's result.
func (s *vaultService) recordAudit(ctx context.Context, event models.AuditEvent) {
	if s.audit == nil {
		return
	}
	event.At = time.Now()
	if err := s.audit.RecordEvent(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("op", event.Op).Msg("failed to record audit event")
	}
}
