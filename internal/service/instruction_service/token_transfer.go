package instruction_service

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/solbridge/solbridge/internal/domain"
)

// TokenTransfer builds an SPL-token transfer instruction.
func (s *service) TokenTransfer(ctx context.Context, source, destination, owner solana.PublicKey, amount uint64) (domain.Instruction, error) {
	inst, err := token.NewTransferInstructionBuilder().
		SetAmount(amount).
		SetSourceAccount(source).
		SetDestinationAccount(destination).
		SetOwnerAccount(owner).
		ValidateAndBuild()
	if err != nil {
		return domain.Instruction{}, err
	}

	return domain.InstructionFromSDK(inst)
}
