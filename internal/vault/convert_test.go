package vault

import (
	"testing"

	"github.com/MKhiriev/go-keep-vault/internal/logger"
	"github.com/MKhiriev/go-keep-vault/internal/utils"
	"github.com/MKhiriev/go-keep-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConvertTree(pool ...models.PoolAttachment) (*Tree, *models.Entry) {
	e := &models.Entry{UUID: "e-1", OTP: "otpauth://totp/x?secret=S"}
	e.Set(models.FieldTitle, models.PlainTextValue("Account"))
	e.Set(models.FieldUserName, models.PlainTextValue("carol"))
	e.Set(models.FieldPassword, models.SensitiveValue([]byte("pw")))
	e.Set(models.FieldURL, models.PlainTextValue("https://example.com"))

	v := &models.Vault{
		Root:        &models.Group{UUID: "r", Children: []models.Node{e}},
		Attachments: pool,
	}
	return NewTree(v, utils.NewUUIDGenerator(), logger.Nop()), e
}

func TestConvertEntry_ReservedFields(t *testing.T) {
	tr, e := newConvertTree()

	d := tr.ConvertEntry(e)
	assert.Equal(t, "Account", d.Title)
	assert.Equal(t, "carol", d.UserName)
	assert.Equal(t, "pw", d.Password, "the password is the one protected field materialized")
	assert.Equal(t, "https://example.com", d.URL)
	assert.Equal(t, "", d.Notes, "absent reserved fields default to empty string")
	assert.Equal(t, "otpauth://totp/x?secret=S", d.OTP)
}

func TestConvertEntry_PlainCustomField(t *testing.T) {
	tr, e := newConvertTree()
	e.Set("Member ID", models.PlainTextValue("M-42"))

	d := tr.ConvertEntry(e)
	require.Len(t, d.CustomFields, 1)
	assert.Equal(t, "Member ID", d.CustomFields[0].Key)
	assert.Equal(t, "M-42", d.CustomFields[0].Value)
	assert.False(t, d.CustomFields[0].Concealed)
}

func TestConvertEntry_SensitiveCustomFieldStaysConcealed(t *testing.T) {
	tr, e := newConvertTree()
	e.Set("PIN", models.SensitiveValue([]byte("0000")))

	d := tr.ConvertEntry(e)
	require.Len(t, d.CustomFields, 1)
	assert.Equal(t, "PIN", d.CustomFields[0].Key)
	assert.True(t, d.CustomFields[0].Concealed)
	assert.Empty(t, d.CustomFields[0].Value, "protected fields are not materialized eagerly")

	// The plain text is available on demand.
	got, err := tr.RevealField("e-1", "PIN")
	require.NoError(t, err)
	assert.Equal(t, "0000", got)
}

func TestConvertEntry_InlineBinaryBecomesAttachment(t *testing.T) {
	tr, e := newConvertTree()
	e.Set("contract.pdf", models.InlineBinaryValue([]byte{0x25, 0x50}))

	d := tr.ConvertEntry(e)
	require.Len(t, d.Attachments, 1)
	assert.Equal(t, "contract.pdf", d.Attachments[0].Filename)
	assert.Equal(t, []byte{0x25, 0x50}, d.Attachments[0].Data)
}

func TestConvertEntry_BinaryRefResolvedFromPool(t *testing.T) {
	tr, e := newConvertTree(models.PoolAttachment{Content: []byte("pooled")})
	e.Set("shared.bin", models.BinaryRefValue(0))

	d := tr.ConvertEntry(e)
	require.Len(t, d.Attachments, 1)
	assert.Equal(t, "shared.bin", d.Attachments[0].Filename)
	assert.Equal(t, []byte("pooled"), d.Attachments[0].Data)
}

func TestConvertEntry_InvalidRefSkippedNotFatal(t *testing.T) {
	tr, e := newConvertTree(models.PoolAttachment{Content: []byte("pooled")})
	e.Set("ok.bin", models.BinaryRefValue(0))
	e.Set("bad.bin", models.BinaryRefValue(7))
	e.Set("negative.bin", models.BinaryRefValue(-1))
	e.Set("After", models.PlainTextValue("still converted"))

	d := tr.ConvertEntry(e)

	// Conversion continues past the bad references.
	require.Len(t, d.Attachments, 1)
	assert.Equal(t, "ok.bin", d.Attachments[0].Filename)
	require.Len(t, d.CustomFields, 1)
	assert.Equal(t, "still converted", d.CustomFields[0].Value)
}

func TestRevealField_AbsentEntry(t *testing.T) {
	tr, _ := newConvertTree()

	_, err := tr.RevealField("missing", "PIN")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConvertGroup_Tree(t *testing.T) {
	tr := newTestTree()
	require.NoError(t, tr.Recycle("e-loose", models.KindEntry))

	d := tr.ConvertGroup(tr.Vault().Root)

	assert.Equal(t, "Root", d.Name)
	require.Len(t, d.Groups, 3) // Finance, Archive, Recycle Bin
	assert.Equal(t, "Finance", d.Groups[0].Name)
	assert.False(t, d.Groups[0].IsRecycleBin)
	assert.Equal(t, RecycleBinName, d.Groups[2].Name)
	assert.True(t, d.Groups[2].IsRecycleBin)
	require.Len(t, d.Groups[2].Entries, 1)
	assert.Equal(t, "Loose", d.Groups[2].Entries[0].Title)
}

func TestConvertGroup_DepthBounded(t *testing.T) {
	// Build nesting deeper than the bound; conversion must not blow the
	// stack and must drop what lies beyond the limit.
	leaf := &models.Group{UUID: "leaf", Name: "leaf"}
	current := leaf
	for i := 0; i < maxTreeDepth+10; i++ {
		current = &models.Group{UUID: "g", Name: "g", Children: []models.Node{current}}
	}
	v := &models.Vault{Root: &models.Group{UUID: "r", Children: []models.Node{current}}}
	tr := NewTree(v, utils.NewUUIDGenerator(), logger.Nop())

	assert.NotPanics(t, func() { tr.ConvertGroup(v.Root) })
}
