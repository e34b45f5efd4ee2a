package instruction_service

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"

	"github.com/solbridge/solbridge/internal/domain"
)

// SolTransfer builds a system-program native transfer instruction.
func (s *service) SolTransfer(ctx context.Context, from, to solana.PublicKey, lamports uint64) (domain.Instruction, error) {
	inst, err := system.NewTransferInstructionBuilder().
		SetLamports(lamports).
		SetFundingAccount(from).
		SetRecipientAccount(to).
		ValidateAndBuild()
	if err != nil {
		return domain.Instruction{}, err
	}

	return domain.InstructionFromSDK(inst)
}
