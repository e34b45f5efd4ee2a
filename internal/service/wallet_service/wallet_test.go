package wallet_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solbridge/solbridge/internal/service/wallet_service"
)

func TestGenerate_ProducesUsableKeypair(t *testing.T) {
	s := wallet_service.NewService()
	ctx := context.Background()

	kp, err := s.Generate(ctx)
	assert.NoError(t, err)
	assert.Len(t, kp.Secret, 64)
	assert.Equal(t, kp.PublicKey, kp.Secret.PublicKey())
}

func TestSignVerify_RoundTrip(t *testing.T) {
	s := wallet_service.NewService()
	ctx := context.Background()

	kp, err := s.Generate(ctx)
	assert.NoError(t, err)

	signed, err := s.Sign(ctx, kp.Secret.String(), "hello")
	assert.NoError(t, err)
	assert.Len(t, signed.Signature, 64)
	assert.Equal(t, kp.PublicKey, signed.PublicKey)
	assert.Equal(t, "hello", signed.Message)

	valid, err := s.Verify(ctx, kp.PublicKey.String(), signed.Signature, "hello")
	assert.NoError(t, err)
	assert.True(t, valid)
}

func TestSignVerify_EmptyMessage(t *testing.T) {
	s := wallet_service.NewService()
	ctx := context.Background()

	kp, err := s.Generate(ctx)
	assert.NoError(t, err)

	signed, err := s.Sign(ctx, kp.Secret.String(), "")
	assert.NoError(t, err)
	assert.Len(t, signed.Signature, 64)

	valid, err := s.Verify(ctx, kp.PublicKey.String(), signed.Signature, "")
	assert.NoError(t, err)
	assert.True(t, valid)
}

func TestVerify_TamperedMessage(t *testing.T) {
	s := wallet_service.NewService()
	ctx := context.Background()

	kp, _ := s.Generate(ctx)
	signed, err := s.Sign(ctx, kp.Secret.String(), "hello")
	assert.NoError(t, err)

	valid, err := s.Verify(ctx, kp.PublicKey.String(), signed.Signature, "hellO")
	assert.NoError(t, err)
	assert.False(t, valid)
}

func TestVerify_TamperedSignature(t *testing.T) {
	s := wallet_service.NewService()
	ctx := context.Background()

	kp, _ := s.Generate(ctx)
	signed, err := s.Sign(ctx, kp.Secret.String(), "hello")
	assert.NoError(t, err)

	signed.Signature[0] ^= 0x01

	valid, err := s.Verify(ctx, kp.PublicKey.String(), signed.Signature, "hello")
	assert.NoError(t, err)
	assert.False(t, valid)
}

func TestVerify_WrongKey(t *testing.T) {
	s := wallet_service.NewService()
	ctx := context.Background()

	kp, _ := s.Generate(ctx)
	other, _ := s.Generate(ctx)

	signed, err := s.Sign(ctx, kp.Secret.String(), "hello")
	assert.NoError(t, err)

	valid, err := s.Verify(ctx, other.PublicKey.String(), signed.Signature, "hello")
	assert.NoError(t, err)
	assert.False(t, valid)
}

func TestSign_InvalidSecret(t *testing.T) {
	s := wallet_service.NewService()
	ctx := context.Background()

	cases := []struct {
		name   string
		secret string
	}{
		{"not base58", "l0IO-not-base58"},
		{"wrong length", "3mJr7AoUXx2Wqd"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Sign(ctx, tc.secret, "hello")
			assert.ErrorIs(t, err, wallet_service.ErrInvalidSecret)
		})
	}
}

func TestVerify_InvalidInputs(t *testing.T) {
	s := wallet_service.NewService()
	ctx := context.Background()

	kp, _ := s.Generate(ctx)
	signed, err := s.Sign(ctx, kp.Secret.String(), "hello")
	assert.NoError(t, err)

	_, err = s.Verify(ctx, "l0IO-not-base58", signed.Signature, "hello")
	assert.ErrorIs(t, err, wallet_service.ErrInvalidPublicKey)

	_, err = s.Verify(ctx, kp.PublicKey.String(), signed.Signature[:32], "hello")
	assert.ErrorIs(t, err, wallet_service.ErrInvalidSignature)
}
