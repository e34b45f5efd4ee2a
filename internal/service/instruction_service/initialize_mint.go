package instruction_service

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/solbridge/solbridge/internal/domain"
)

// InitializeMint builds an SPL-token initialize-mint instruction.
// No freeze authority is set.
func (s *service) InitializeMint(ctx context.Context, mint, authority solana.PublicKey, decimals uint8) (domain.Instruction, error) {
	inst, err := token.NewInitializeMintInstructionBuilder().
		SetDecimals(decimals).
		SetMintAuthority(authority).
		SetMintAccount(mint).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		ValidateAndBuild()
	if err != nil {
		return domain.Instruction{}, err
	}

	return domain.InstructionFromSDK(inst)
}
