package wallet_service

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/solbridge/solbridge/internal/domain"
)

// Generate creates a new random keypair.
func (s *service) Generate(ctx context.Context) (domain.Keypair, error) {
	wallet := solana.NewWallet()

	return domain.Keypair{
		PublicKey: wallet.PublicKey(),
		Secret:    wallet.PrivateKey,
	}, nil
}
