package wallet_handler

import (
	"context"

	"github.com/solbridge/solbridge/internal/domain"
)

// WalletService is the keypair and detached-signature business logic.
type WalletService interface {
	Generate(ctx context.Context) (domain.Keypair, error)
	Sign(ctx context.Context, secret string, message string) (domain.SignedMessage, error)
	Verify(ctx context.Context, pubkey string, signature []byte, message string) (bool, error)
}

type WalletHandler struct {
	svc WalletService
}

func NewWalletHandler(svc WalletService) *WalletHandler {
	return &WalletHandler{svc: svc}
}
