// Package store implements persistence for the application: the atomic
// vault-file gateway and the SQLite-backed audit repository.
package store

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-keep-vault/internal/codec"
	"github.com/MKhiriev/go-keep-vault/internal/logger"
	"github.com/MKhiriev/go-keep-vault/internal/utils"
	"github.com/MKhiriev/go-keep-vault/models"
)

// vaultFileMode keeps the container readable by the owner only.
const vaultFileMode = 0600

// vaultGateway is the default implementation of [VaultGateway] on top of a
// [codec.Codec] and the local filesystem.
type vaultGateway struct {
	codec  codec.Codec
	uuids  *utils.UUIDGenerator
	logger *logger.Logger
}

// NewVaultGateway constructs a [VaultGateway] that persists containers
// produced by c.
func NewVaultGateway(c codec.Codec, gen *utils.UUIDGenerator, log *logger.Logger) VaultGateway {
	return &vaultGateway{codec: c, uuids: gen, logger: log}
}

// Open implements [VaultGateway].
func (g *vaultGateway) Open(path string, creds models.Credentials) (*models.Vault, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		g.logger.Err(err).Str("path", path).Msg("failed to read vault file")
		return nil, fmt.Errorf("%w: read %s: %w", ErrVaultIO, path, err)
	}

	v, err := g.codec.Decode(data, creds)
	if err != nil {
		return nil, fmt.Errorf("decode vault %s: %w", path, err)
	}

	g.logger.Debug().Str("path", path).Msg("vault opened")
	return v, nil
}

// Create implements [VaultGateway].
func (g *vaultGateway) Create(path, rootName string, creds models.Credentials) (*models.Vault, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrVaultExists, path)
	}

	v := models.NewVault(g.uuids.Generate(), rootName)
	if err := g.Save(v, path, creds); err != nil {
		return nil, err
	}

	g.logger.Debug().Str("path", path).Msg("vault created")
	return v, nil
}

// Save implements [VaultGateway]. The pipeline is:
//
//  1. derive the temporary path by appending ".tmp" to the destination;
//  2. serialize the tree through the codec and write it fully to the
//     temporary path;
//  3. flush and fsync the temporary file to durable storage;
//  4. atomically rename the temporary path onto the destination.
//
// Any failure in steps 1-3 aborts before the rename, leaving the
// destination untouched.
func (g *vaultGateway) Save(v *models.Vault, path string, creds models.Credentials) error {
	data, err := g.codec.Encode(v, creds)
	if err != nil {
		return fmt.Errorf("encode vault: %w", err)
	}

	tmpPath := path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, vaultFileMode)
	if err != nil {
		return fmt.Errorf("%w: create temp file %s: %w", ErrVaultIO, tmpPath, err)
	}

	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("%w: write temp file %s: %w", ErrVaultIO, tmpPath, err)
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("%w: sync temp file %s: %w", ErrVaultIO, tmpPath, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: close temp file %s: %w", ErrVaultIO, tmpPath, err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", ErrVaultIO, path, err)
	}

	g.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("vault saved")
	return nil
}
