package dto

// KeypairData holds a freshly generated keypair.
// swagger:model KeypairData
// @description pubkey - base58-encoded 32-byte public key
// @description secret - base58-encoded 64-byte keypair (seed || public key)
type KeypairData struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}
