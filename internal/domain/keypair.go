package domain

import "github.com/gagliardetto/solana-go"

// Keypair is a freshly generated ed25519 keypair in the Solana layout:
// the secret is the full 64-byte keypair (seed || public key).
type Keypair struct {
	PublicKey solana.PublicKey
	Secret    solana.PrivateKey
}

// SignedMessage is a detached signature over a text message.
type SignedMessage struct {
	Signature []byte
	PublicKey solana.PublicKey
	Message   string
}
