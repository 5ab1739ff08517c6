package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-keep-vault/internal/logger"
	"github.com/MKhiriev/go-keep-vault/internal/utils"
	"github.com/MKhiriev/go-keep-vault/internal/validators"
	"github.com/MKhiriev/go-keep-vault/internal/vault"
	"github.com/MKhiriev/go-keep-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyGateway is an in-memory VaultGateway. Save can be made to block so
// tests can observe the single-flight gate, or to fail on demand.
type spyGateway struct {
	mu        sync.Mutex
	vault     *models.Vault
	saveCalls int
	saveErr   error
	saveGate  chan struct{} // when set, Save blocks until the channel closes
	lastPath  string
}

func (g *spyGateway) Open(path string, _ models.Credentials) (*models.Vault, error) {
	if g.vault == nil {
		return nil, errors.New("no vault")
	}
	g.lastPath = path
	return g.vault, nil
}

func (g *spyGateway) Create(path, rootName string, _ models.Credentials) (*models.Vault, error) {
	g.vault = models.NewVault("root-1", rootName)
	g.lastPath = path
	return g.vault, nil
}

func (g *spyGateway) Save(_ *models.Vault, path string, _ models.Credentials) error {
	g.mu.Lock()
	g.saveCalls++
	gate := g.saveGate
	err := g.saveErr
	g.lastPath = path
	g.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return err
}

func (g *spyGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saveCalls
}

// spyAudit collects recorded events.
type spyAudit struct {
	mu     sync.Mutex
	events []models.AuditEvent
	err    error
}

func (a *spyAudit) RecordEvent(_ context.Context, event models.AuditEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	a.events = append(a.events, event)
	return nil
}

func (a *spyAudit) ListEvents(context.Context, uint64) ([]models.AuditEvent, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.AuditEvent(nil), a.events...), nil
}

func (a *spyAudit) Close() error { return nil }

func (a *spyAudit) ops() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Op)
	}
	return out
}

func newTestService(t *testing.T) (VaultService, *spyGateway, *spyAudit) {
	t.Helper()
	gw := &spyGateway{}
	audit := &spyAudit{}
	svc := NewVaultService(gw, audit, utils.NewUUIDGenerator(), logger.Nop())
	require.NoError(t, svc.Create(context.Background(), "/tmp/test.gkv", "Root", models.Credentials{Password: "pw"}))
	return svc, gw, audit
}

// ── Loading ──────────────────────────────────────────────────────────────────

func TestService_NoVaultLoaded(t *testing.T) {
	svc := NewVaultService(&spyGateway{}, nil, utils.NewUUIDGenerator(), logger.Nop())
	ctx := context.Background()

	_, err := svc.Render()
	assert.ErrorIs(t, err, ErrNoVaultLoaded)
	_, err = svc.GetEntry("x")
	assert.ErrorIs(t, err, ErrNoVaultLoaded)
	_, err = svc.AddEntry(ctx, "x", models.EntryDraft{})
	assert.ErrorIs(t, err, ErrNoVaultLoaded)
	assert.ErrorIs(t, svc.DeleteEntry(ctx, "x"), ErrNoVaultLoaded)
	assert.ErrorIs(t, svc.EmptyRecycleBin(ctx), ErrNoVaultLoaded)
	assert.ErrorIs(t, svc.Save(ctx), ErrNoVaultLoaded)
}

func TestService_UnlockFailurePropagates(t *testing.T) {
	svc := NewVaultService(&spyGateway{}, nil, utils.NewUUIDGenerator(), logger.Nop())

	err := svc.Unlock(context.Background(), "/tmp/missing.gkv", models.Credentials{Password: "pw"})
	require.Error(t, err)

	// The service stays empty after a failed unlock.
	_, err = svc.Render()
	assert.ErrorIs(t, err, ErrNoVaultLoaded)
}

// ── Mutations and the dirty flag ─────────────────────────────────────────────

func TestService_AddEntryMarksDirty(t *testing.T) {
	svc, _, _ := newTestService(t)
	require.False(t, svc.Dirty(), "a freshly created vault has no unsaved changes")

	uuid, err := svc.AddEntry(context.Background(), "root-1", models.EntryDraft{Title: "Mail", UserName: "bob"})
	require.NoError(t, err)
	assert.NotEmpty(t, uuid)
	assert.True(t, svc.Dirty())

	got, err := svc.GetEntry(uuid)
	require.NoError(t, err)
	assert.Equal(t, "Mail", got.Title)
	assert.Equal(t, "bob", got.UserName)
}

func TestService_FailedMutationLeavesClean(t *testing.T) {
	svc, _, audit := newTestService(t)
	before := len(audit.ops())

	_, err := svc.AddEntry(context.Background(), "missing-parent", models.EntryDraft{Title: "x"})
	assert.ErrorIs(t, err, vault.ErrNotFound)
	assert.False(t, svc.Dirty(), "a rejected mutation leaves no unsaved changes")
	assert.Len(t, audit.ops(), before, "rejected mutations are not audited")
}

func TestService_RejectsInvalidDrafts(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddGroup(ctx, "root-1", models.GroupDraft{})
	assert.ErrorIs(t, err, validators.ErrEmptyGroupName)

	_, err = svc.AddEntry(ctx, "root-1", models.EntryDraft{
		CustomFields: []models.CustomField{{Key: models.FieldPassword}},
	})
	assert.ErrorIs(t, err, validators.ErrReservedFieldKey)
	assert.False(t, svc.Dirty())
}

func TestService_DeleteThenEmptyBin(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	uuid, err := svc.AddEntry(ctx, "root-1", models.EntryDraft{Title: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, uuid))
	inBin, err := svc.IsInsideRecycleBin(uuid)
	require.NoError(t, err)
	assert.True(t, inBin)

	// Recycling an already-recycled node is a guard violation.
	assert.ErrorIs(t, svc.DeleteEntry(ctx, uuid), vault.ErrGuardViolation)

	require.NoError(t, svc.EmptyRecycleBin(ctx))
	_, err = svc.GetEntry(uuid)
	assert.ErrorIs(t, err, vault.ErrNotFound)
}

func TestService_DeletePermanentlySkipsBin(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	uuid, err := svc.AddGroup(ctx, "root-1", models.GroupDraft{Name: "Temp"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGroupPermanently(ctx, uuid))

	d, err := svc.Render()
	require.NoError(t, err)
	assert.Empty(t, d.Groups, "a permanent delete does not pass through the recycle bin")
}

func TestService_UpdateEntry(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	uuid, err := svc.AddEntry(ctx, "root-1", models.EntryDraft{Title: "Old", Password: "s3cret"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateEntry(ctx, uuid, models.EntryDraft{Title: "New", Password: "rotated"}))

	got, err := svc.GetEntry(uuid)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "rotated", got.Password)
}

// ── Save pipeline ────────────────────────────────────────────────────────────

func TestSave_ClearsDirty(t *testing.T) {
	svc, gw, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, "root-1", models.EntryDraft{Title: "x"})
	require.NoError(t, err)
	require.True(t, svc.Dirty())

	require.NoError(t, svc.Save(ctx))
	assert.False(t, svc.Dirty())
	assert.Equal(t, 1, gw.calls())
}

func TestSave_FailureKeepsDirty(t *testing.T) {
	svc, gw, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, "root-1", models.EntryDraft{Title: "x"})
	require.NoError(t, err)

	gw.saveErr = errors.New("disk full")
	require.Error(t, svc.Save(ctx))
	assert.True(t, svc.Dirty(), "a failed save keeps the changes pending")
}

func TestSave_SingleFlight(t *testing.T) {
	svc, gw, _ := newTestService(t)
	ctx := context.Background()

	gate := make(chan struct{})
	gw.saveGate = gate

	firstDone := make(chan error, 1)
	go func() { firstDone <- svc.Save(ctx) }()

	// Wait until the first save is inside the gateway.
	require.Eventually(t, func() bool { return gw.calls() == 1 }, time.Second, time.Millisecond)

	// A second save while one is in flight is rejected, not queued.
	assert.ErrorIs(t, svc.Save(ctx), ErrLockContention)

	close(gate)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, gw.calls())

	// The gate releases once the save completes.
	require.NoError(t, svc.Save(ctx))
}

func TestSave_ReadsProceedDuringSave(t *testing.T) {
	svc, gw, _ := newTestService(t)
	ctx := context.Background()

	uuid, err := svc.AddEntry(ctx, "root-1", models.EntryDraft{Title: "Readable"})
	require.NoError(t, err)

	gate := make(chan struct{})
	gw.saveGate = gate

	saveDone := make(chan error, 1)
	go func() { saveDone <- svc.Save(ctx) }()
	require.Eventually(t, func() bool { return gw.calls() == 1 }, time.Second, time.Millisecond)

	// Lookups use the shared lock and do not wait for the save.
	got, err := svc.GetEntry(uuid)
	require.NoError(t, err)
	assert.Equal(t, "Readable", got.Title)

	close(gate)
	require.NoError(t, <-saveDone)
}

// ── Audit trail ──────────────────────────────────────────────────────────────

func TestService_AuditTrail(t *testing.T) {
	svc, _, audit := newTestService(t)
	ctx := context.Background()

	uuid, err := svc.AddEntry(ctx, "root-1", models.EntryDraft{Title: "x"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEntry(ctx, uuid))
	require.NoError(t, svc.Save(ctx))

	assert.Equal(t, []string{"create", "add_entry", "recycle", "save"}, audit.ops())
}

func TestService_AuditFailureIsBestEffort(t *testing.T) {
	gw := &spyGateway{}
	audit := &spyAudit{err: errors.New("audit db gone")}
	svc := NewVaultService(gw, audit, utils.NewUUIDGenerator(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "/tmp/test.gkv", "Root", models.Credentials{Password: "pw"}))

	// The operation succeeds even though every audit write fails.
	_, err := svc.AddEntry(ctx, "root-1", models.EntryDraft{Title: "x"})
	assert.NoError(t, err)
}
