package instruction_handler

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/solbridge/solbridge/internal/domain"
)

// InstructionService builds instruction payloads against the wrapped SDK.
type InstructionService interface {
	InitializeMint(ctx context.Context, mint, authority solana.PublicKey, decimals uint8) (domain.Instruction, error)
	MintTo(ctx context.Context, mint, destination, authority solana.PublicKey, amount uint64) (domain.Instruction, error)
	TokenTransfer(ctx context.Context, source, destination, owner solana.PublicKey, amount uint64) (domain.Instruction, error)
	SolTransfer(ctx context.Context, from, to solana.PublicKey, lamports uint64) (domain.Instruction, error)
}

type InstructionHandler struct {
	svc InstructionService
}

func NewInstructionHandler(svc InstructionService) *InstructionHandler {
	return &InstructionHandler{svc: svc}
}
