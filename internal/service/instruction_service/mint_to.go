package instruction_service

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/solbridge/solbridge/internal/domain"
)

// MintTo builds an SPL-token mint-to instruction.
func (s *service) MintTo(ctx context.Context, mint, destination, authority solana.PublicKey, amount uint64) (domain.Instruction, error) {
	inst, err := token.NewMintToInstructionBuilder().
		SetAmount(amount).
		SetMintAccount(mint).
		SetDestinationAccount(destination).
		SetAuthorityAccount(authority).
		ValidateAndBuild()
	if err != nil {
		return domain.Instruction{}, err
	}

	return domain.InstructionFromSDK(inst)
}
