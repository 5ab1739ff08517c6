package vault

import (
	"testing"

	"github.com/MKhiriev/go-keep-vault/internal/logger"
	"github.com/MKhiriev/go-keep-vault/internal/utils"
	"github.com/MKhiriev/go-keep-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTree builds a small fixture vault:
//
//	Root (root-1)
//	├── Finance (g-fin)
//	│   └── Bank entry (e-bank)
//	├── Archive (g-arc)
//	│   └── Nested (g-nested)
//	│       └── Old entry (e-old)
//	└── Loose entry (e-loose)
func newTestTree() *Tree {
	bank := &models.Entry{UUID: "e-bank"}
	bank.Set(models.FieldTitle, models.PlainTextValue("Bank"))
	bank.Set(models.FieldUserName, models.PlainTextValue("alice"))

	old := &models.Entry{UUID: "e-old"}
	old.Set(models.FieldTitle, models.PlainTextValue("Old"))

	loose := &models.Entry{UUID: "e-loose"}
	loose.Set(models.FieldTitle, models.PlainTextValue("Loose"))

	v := &models.Vault{
		Root: &models.Group{
			UUID: "root-1",
			Name: "Root",
			Children: []models.Node{
				&models.Group{UUID: "g-fin", Name: "Finance", Children: []models.Node{bank}},
				&models.Group{UUID: "g-arc", Name: "Archive", Children: []models.Node{
					&models.Group{UUID: "g-nested", Name: "Nested", Children: []models.Node{old}},
				}},
				loose,
			},
		},
	}

	return NewTree(v, utils.NewUUIDGenerator(), logger.Nop())
}

// ── Find ─────────────────────────────────────────────────────────────────────

func TestFind_Root(t *testing.T) {
	tr := newTestTree()

	n, ok := tr.Find("root-1", models.KindGroup)
	require.True(t, ok)
	assert.Equal(t, "root-1", n.NodeUUID())
}

func TestFind_NestedEntry(t *testing.T) {
	tr := newTestTree()

	n, ok := tr.Find("e-old", models.KindEntry)
	require.True(t, ok)
	assert.Equal(t, models.KindEntry, n.Kind())
}

func TestFind_KindFilter(t *testing.T) {
	tr := newTestTree()

	// An entry UUID must not match when asking for a group.
	_, ok := tr.Find("e-bank", models.KindGroup)
	assert.False(t, ok)

	// KindAny matches both.
	_, ok = tr.Find("e-bank", models.KindAny)
	assert.True(t, ok)
	_, ok = tr.Find("g-fin", models.KindAny)
	assert.True(t, ok)
}

func TestFind_Absent(t *testing.T) {
	tr := newTestTree()

	_, ok := tr.Find("not-a-real-uuid", models.KindAny)
	assert.False(t, ok)
}

func TestFind_DocumentOrderFirstWins(t *testing.T) {
	// A corrupted tree with a duplicate UUID: the first match in document
	// order is returned, tolerated rather than flagged.
	first := &models.Entry{UUID: "dup"}
	first.Set(models.FieldTitle, models.PlainTextValue("first"))
	second := &models.Entry{UUID: "dup"}
	second.Set(models.FieldTitle, models.PlainTextValue("second"))

	v := &models.Vault{Root: &models.Group{UUID: "r", Children: []models.Node{first, second}}}
	tr := NewTree(v, utils.NewUUIDGenerator(), logger.Nop())

	n, ok := tr.Find("dup", models.KindEntry)
	require.True(t, ok)
	assert.Equal(t, "first", n.(*models.Entry).Title())
}

func TestFindEntry_TypedResult(t *testing.T) {
	tr := newTestTree()

	e, ok := tr.FindEntry("e-bank")
	require.True(t, ok)
	assert.Equal(t, "Bank", e.Title())

	_, ok = tr.FindEntry("g-fin")
	assert.False(t, ok)
}

// ── IsDescendantOf ───────────────────────────────────────────────────────────

func TestIsDescendantOf(t *testing.T) {
	tr := newTestTree()

	assert.True(t, tr.IsDescendantOf("e-bank", "g-fin"))
	assert.True(t, tr.IsDescendantOf("e-old", "g-arc"), "descendants at any depth count")
	assert.True(t, tr.IsDescendantOf("g-nested", "g-arc"))
	assert.False(t, tr.IsDescendantOf("e-bank", "g-arc"))
	assert.False(t, tr.IsDescendantOf("e-bank", "e-loose"), "an entry is not an ancestor")
	assert.False(t, tr.IsDescendantOf("e-bank", "missing"))
}

// ── IsInsideRecycleBin ───────────────────────────────────────────────────────

func TestIsInsideRecycleBin_NoBin(t *testing.T) {
	tr := newTestTree()

	assert.False(t, tr.IsInsideRecycleBin("e-bank"))
	assert.False(t, tr.IsInsideRecycleBin("root-1"))
}

func TestIsInsideRecycleBin_BinAndDescendants(t *testing.T) {
	tr := newTestTree()

	require.NoError(t, tr.Recycle("g-arc", models.KindGroup))
	binUUID := tr.Vault().Meta.RecycleBinUUID
	require.NotEmpty(t, binUUID)

	assert.True(t, tr.IsInsideRecycleBin(binUUID), "the bin itself counts")
	assert.True(t, tr.IsInsideRecycleBin("g-arc"))
	assert.True(t, tr.IsInsideRecycleBin("e-old"), "deep descendants count")
	assert.False(t, tr.IsInsideRecycleBin("e-bank"))
}
