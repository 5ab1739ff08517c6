package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-keep-vault/internal/crypto"
	"github.com/MKhiriev/go-keep-vault/models"
)

// Container layout, in order:
//
//	magic   4 bytes  "GKVC"
//	version 1 byte   currently 1
//	salt    16 bytes Argon2id salt, stored in the clear
//	blob    rest     AES-256-GCM sealed JSON payload (nonce ‖ ciphertext)
var containerMagic = []byte("GKVC")

const (
	containerVersion = 1
	saltLen          = 16
	headerLen        = len("GKVC") + 1 + saltLen
)

// containerCodec is the default [Codec]: JSON payload sealed with a key
// derived from the credentials by the key chain.
type containerCodec struct {
	keys crypto.KeyChain
}

// New returns the default container codec.
func New(keys crypto.KeyChain) Codec {
	return &containerCodec{keys: keys}
}

// Decode implements [Codec].
func (c *containerCodec) Decode(data []byte, creds models.Credentials) (*models.Vault, error) {
	if len(data) < headerLen || !bytes.Equal(data[:len(containerMagic)], containerMagic) {
		return nil, fmt.Errorf("%w: bad header", ErrMalformedContainer)
	}
	if version := data[len(containerMagic)]; version != containerVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedContainer, version)
	}

	salt := data[len(containerMagic)+1 : headerLen]
	key := c.keys.DeriveKey(creds.Password, creds.KeyFile, salt)

	plaintext, err := c.keys.Open(data[headerLen:], key)
	if err != nil {
		if errors.Is(err, crypto.ErrCipherAuth) {
			return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
		}
		return nil, fmt.Errorf("open container blob: %w", err)
	}

	var w wireVault
	if err := json.Unmarshal(plaintext, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedContainer, err)
	}

	return w.toModel()
}

// Encode implements [Codec]. Every call generates a fresh salt and nonce,
// so two encodings of the same vault never produce identical bytes.
func (c *containerCodec) Encode(v *models.Vault, creds models.Credentials) ([]byte, error) {
	plaintext, err := json.Marshal(fromModel(v))
	if err != nil {
		return nil, fmt.Errorf("marshal vault payload: %w", err)
	}

	salt, err := c.keys.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	key := c.keys.DeriveKey(creds.Password, creds.KeyFile, salt)

	blob, err := c.keys.Seal(plaintext, key)
	if err != nil {
		return nil, fmt.Errorf("seal vault payload: %w", err)
	}

	out := make([]byte, 0, headerLen+len(blob))
	out = append(out, containerMagic...)
	out = append(out, containerVersion)
	out = append(out, salt...)
	out = append(out, blob...)
	return out, nil
}
