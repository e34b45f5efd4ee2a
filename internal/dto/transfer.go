package dto

// SendSolReq describes a native transfer instruction request. Lamports is a
// pointer so that an explicit 0 binds while a missing field is rejected.
// swagger:model SendSolReq
type SendSolReq struct {
	From     string  `json:"from" binding:"required"`
	To       string  `json:"to" binding:"required"`
	Lamports *uint64 `json:"lamports" binding:"required"`
}

// SendSolData is the native transfer response. Unlike the token endpoints the
// account list is flat base58 keys, without signer/writable flags.
// swagger:model SendSolData
type SendSolData struct {
	ProgramID       string   `json:"program_id"`
	Accounts        []string `json:"accounts"`
	InstructionData string   `json:"instruction_data"`
}

// SendTokenReq describes an SPL transfer instruction request.
// swagger:model SendTokenReq
type SendTokenReq struct {
	Destination string  `json:"destination" binding:"required"`
	Mint        string  `json:"mint" binding:"required"`
	Owner       string  `json:"owner" binding:"required"`
	Amount      *uint64 `json:"amount" binding:"required"`
}
