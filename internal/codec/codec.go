// Package codec implements the wire format of the vault file: an encrypted
// container that turns a decrypted tree into bytes and back. The tree engine
// and the persistence gateway only see the [Codec] interface; everything
// about the container layout and its cryptography stays behind it.
package codec

import (
	"errors"

	"github.com/MKhiriev/go-keep-vault/models"
)

var (
	// ErrAuthenticationFailed is returned by Decode when the credentials do
	// not unlock the container (the authentication tag does not verify).
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrMalformedContainer is returned by Decode when the byte stream is
	// not a vault container: wrong magic, unsupported version or a payload
	// that does not parse after decryption.
	ErrMalformedContainer = errors.New("malformed vault container")
)

// Codec converts between a decrypted vault and its on-disk byte form.
// Credentials are opaque and forwarded unmodified to the key derivation.
type Codec interface {
	// Decode opens a container and returns the decrypted vault.
	Decode(data []byte, creds models.Credentials) (*models.Vault, error)

	// Encode serializes the vault into a fresh sealed container.
	Encode(v *models.Vault, creds models.Credentials) ([]byte, error)
}
