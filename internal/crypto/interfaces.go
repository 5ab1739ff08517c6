package crypto

// KeyChain owns all cryptography of the vault container. It knows nothing
// about the tree, the file layout or the caller; its single job is turning
// credentials into keys and sealing byte payloads with them.
//
// Scheme:
//
//	salt = GenerateSalt()                       (once per container)
//	key  = DeriveKey(password, keyFile, salt)
//	blob = Seal(plaintext, key)                 (nonce ‖ ciphertext)
//	plaintext = Open(blob, key)                 (fails on a wrong key)
type KeyChain interface {
	// GenerateSalt produces a fresh random 16-byte salt. The salt is not a
	// secret and is stored in the container header in the clear.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit key from the master password, an optional
	// key file and the container salt via Argon2id. The key exists only in
	// memory for the duration of an open or save.
	DeriveKey(masterPassword string, keyFile, salt []byte) []byte

	// Seal encrypts plaintext with key using AES-256-GCM. The returned blob
	// is nonce ‖ ciphertext and is safe to write to disk.
	Seal(plaintext, key []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. A wrong key surfaces as an
	// error matching [ErrCipherAuth] (the GCM tag does not verify).
	Open(blob, key []byte) ([]byte, error)
}
