package dto

// AccountMetaInfo mirrors one account reference of an instruction.
// swagger:model AccountMetaInfo
type AccountMetaInfo struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// InstructionData is the response shape of the instruction-building endpoints.
// swagger:model InstructionData
// @description program_id - base58 program id the instruction targets
// @description accounts - ordered account references with access-mode flags
// @description instruction_data - base64-encoded instruction payload
type InstructionData struct {
	ProgramID       string            `json:"program_id"`
	Accounts        []AccountMetaInfo `json:"accounts"`
	InstructionData string            `json:"instruction_data"`
}
