package wallet_service

import "errors"

var (
	ErrInvalidSecret    = errors.New("invalid secret")
	ErrInvalidPublicKey = errors.New("invalid pubkey")
	ErrInvalidSignature = errors.New("invalid signature")
)

type service struct{}

func NewService() *service {
	return &service{}
}
