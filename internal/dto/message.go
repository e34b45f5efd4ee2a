package dto

// SignMessageReq describes a detached-signature request. Message is a
// pointer so that a present-but-empty message binds, while a missing field
// is still rejected.
// swagger:model SignMessageReq
// @description secret - base58-encoded 64-byte keypair, as returned by /keypair
type SignMessageReq struct {
	Message *string `json:"message" binding:"required"`
	Secret  string  `json:"secret" binding:"required"`
}

// SignMessageData is the sign response.
// swagger:model SignMessageData
// @description signature - base64-encoded 64-byte ed25519 signature
// @description public_key - base58 public key derived from the secret
type SignMessageData struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

// VerifyMessageReq describes a signature verification request. Message may
// be empty; see SignMessageReq.
// swagger:model VerifyMessageReq
type VerifyMessageReq struct {
	Message   *string `json:"message" binding:"required"`
	Signature string  `json:"signature" binding:"required"`
	Pubkey    string  `json:"pubkey" binding:"required"`
}

// VerifyMessageData is the verify response; the message and pubkey are echoed.
// swagger:model VerifyMessageData
type VerifyMessageData struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}
