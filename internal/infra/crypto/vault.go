// Package crypto seals provider tokens before they are written to storage.
package crypto

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"wearsync/config"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/service"
	"wearsync/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/secrets"
	"gocloud.dev/secrets/localsecrets"
	"golang.org/x/crypto/hkdf"
)

// KeySize is the required master key length and the derived secretbox key length.
const KeySize = 32

var vaultKeyInfo = []byte("wearsync token vault v1")

// Params defines the required parameters
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
}

// New creates the process-wide token vault from configuration.
func New(params Params) (service.TokenVault, error) {
	vault, err := NewVault([]byte(params.Config.Security.EncryptionKey))
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return vault.Close()
		},
	})

	return vault, nil
}

// Vault is a TokenVault backed by an authenticated NaCl secretbox keeper.
type Vault struct {
	keeper *secrets.Keeper
}

// NewVault derives the sealing key from master with HKDF-SHA256.
func NewVault(master []byte) (*Vault, error) {
	if len(master) != KeySize {
		return nil, domainerrors.NewCryptoError("derive key",
			errors.Errorf("master key must be %d bytes, got %d", KeySize, len(master)))
	}

	var key [KeySize]byte
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, vaultKeyInfo), key[:]); err != nil {
		return nil, domainerrors.NewCryptoError("derive key", errors.WithStack(err))
	}

	return &Vault{keeper: localsecrets.NewKeeper(key)}, nil
}

// Encrypt returns URL-safe base64 ciphertext of plaintext.
func (v *Vault) Encrypt(ctx context.Context, plaintext string) (string, error) {
	sealed, err := v.keeper.Encrypt(ctx, []byte(plaintext))
	if err != nil {
		return "", domainerrors.NewCryptoError("encrypt", errors.WithStack(err))
	}

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt opens ciphertext produced by Encrypt. Tampered input fails authentication.
func (v *Vault) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", domainerrors.NewCryptoError("decode", errors.WithStack(err))
	}

	plain, err := v.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return "", domainerrors.NewCryptoError("decrypt", errors.WithStack(err))
	}

	return string(plain), nil
}

// Close releases the keeper.
func (v *Vault) Close() error {
	return errors.WithStack(v.keeper.Close())
}
