package domain

import "github.com/gagliardetto/solana-go"

// AccountMeta is one account reference of an instruction.
type AccountMeta struct {
	PublicKey  solana.PublicKey
	IsSigner   bool
	IsWritable bool
}

// Instruction is a decoded on-chain instruction: target program, ordered
// account references and the serialized payload.
type Instruction struct {
	ProgramID solana.PublicKey
	Accounts  []AccountMeta
	Data      []byte
}

// InstructionFromSDK flattens an SDK instruction into a plain value.
func InstructionFromSDK(inst solana.Instruction) (Instruction, error) {
	data, err := inst.Data()
	if err != nil {
		return Instruction{}, err
	}

	metas := inst.Accounts()
	out := Instruction{
		ProgramID: inst.ProgramID(),
		Accounts:  make([]AccountMeta, 0, len(metas)),
		Data:      data,
	}
	for _, m := range metas {
		out.Accounts = append(out.Accounts, AccountMeta{
			PublicKey:  m.PublicKey,
			IsSigner:   m.IsSigner,
			IsWritable: m.IsWritable,
		})
	}

	return out, nil
}
