package dto

// CreateTokenReq describes the initialize-mint request. Numeric fields are
// pointers so that an explicit 0 binds while a missing field is rejected.
// swagger:model CreateTokenReq
type CreateTokenReq struct {
	MintAuthority string `json:"mintAuthority" binding:"required"`
	Mint          string `json:"mint" binding:"required"`
	Decimals      *uint8 `json:"decimals" binding:"required"`
}

// MintTokenReq describes the mint-to request.
// swagger:model MintTokenReq
type MintTokenReq struct {
	Mint        string  `json:"mint" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	Authority   string  `json:"authority" binding:"required"`
	Amount      *uint64 `json:"amount" binding:"required"`
}
