package wallet_service

import (
	"context"
	"crypto/ed25519"

	"github.com/gagliardetto/solana-go"
)

// Verify checks a detached ed25519 signature against a base58 public key.
// The signature bytes are already base64-decoded by the caller.
func (s *service) Verify(ctx context.Context, pubkey string, signature []byte, message string) (bool, error) {
	pub, err := solana.PublicKeyFromBase58(pubkey)
	if err != nil {
		return false, ErrInvalidPublicKey
	}
	if len(signature) != ed25519.SignatureSize {
		return false, ErrInvalidSignature
	}

	return ed25519.Verify(ed25519.PublicKey(pub.Bytes()), []byte(message), signature), nil
}
