package service

import "context"

// TokenVault seals secrets before they reach durable storage.
// Both operations fail with a CryptoError rather than returning unauthenticated data.
type TokenVault interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}
