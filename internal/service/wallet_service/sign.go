package wallet_service

import (
	"context"
	"crypto/ed25519"

	"github.com/gagliardetto/solana-go"

	"github.com/solbridge/solbridge/internal/domain"
)

// Sign produces a detached ed25519 signature over message with the
// base58-encoded 64-byte secret.
func (s *service) Sign(ctx context.Context, secret string, message string) (domain.SignedMessage, error) {
	priv, err := solana.PrivateKeyFromBase58(secret)
	if err != nil {
		return domain.SignedMessage{}, ErrInvalidSecret
	}
	if len(priv) != ed25519.PrivateKeySize {
		return domain.SignedMessage{}, ErrInvalidSecret
	}

	sig, err := priv.Sign([]byte(message))
	if err != nil {
		return domain.SignedMessage{}, err
	}

	return domain.SignedMessage{
		Signature: sig[:],
		PublicKey: priv.PublicKey(),
		Message:   message,
	}, nil
}
