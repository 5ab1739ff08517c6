// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ErrCipherAuth is returned by Open when the GCM authentication tag does
// not verify. This almost always means the caller supplied the wrong
// master password or key file, producing a wrong key.
var ErrCipherAuth = errors.New("ciphertext authentication failed")

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChain constructs a [KeyChain] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChain() KeyChain {
	return &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [KeyChain]. It reads 16 random bytes from the OS
// CSPRNG. Returns an error if the random read fails.
func (k *keyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [KeyChain]. It derives a 256-bit key from
// masterPassword, an optional keyFile and salt using Argon2id with the
// parameters stored in the receiver. A key file is folded in by hashing
// its content and appending the digest to the password material, so either
// factor alone is insufficient when both are set.
func (k *keyChain) DeriveKey(masterPassword string, keyFile, salt []byte) []byte {
	material := []byte(masterPassword)
	if len(keyFile) > 0 {
		sum := sha256.Sum256(keyFile)
		material = append(material, sum[:]...)
	}

	return argon2.IDKey(
		material,
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// Seal implements [KeyChain]. It encrypts plaintext with key using
// AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext so
// that the decryption side can locate it: blob = nonce ‖ ciphertext.
// Returns an error if cipher creation or the random nonce read fails.
func (k *keyChain) Seal(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Open can split it out without a side channel.
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// Open implements [KeyChain]. It unwraps a blob produced by Seal using key
// and AES-256-GCM. The blob must be at least as long as the GCM nonce
// (12 bytes). Returns the plaintext, or an error matching [ErrCipherAuth]
// if the key is wrong or the ciphertext is corrupted.
func (k *keyChain) Open(blob, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short: %w", ErrCipherAuth)
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCipherAuth, err)
	}

	return plaintext, nil
}
