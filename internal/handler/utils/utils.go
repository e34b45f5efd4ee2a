package utils

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/solbridge/solbridge/internal/domain"
	"github.com/solbridge/solbridge/internal/dto"
)

// Decode decodes a base64 string into bytes.
func Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		logrus.Errorf("base64 decode error: %s", err)
		return []byte{}, err
	}
	return b, nil
}

// Encode encodes bytes into base64.
func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// WriteOK writes the success envelope.
func WriteOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.OK(data))
}

// WriteErr writes the error envelope. Client faults (4xx) are flagged for
// the attempt limiter; server-side failures are not held against the caller.
func WriteErr(c *gin.Context, status int, msg string) {
	if status < http.StatusInternalServerError {
		c.Set("failed_request", true)
	}
	c.JSON(status, dto.Err(msg))
}

// HandleBindError fans out binding failures: validator errors become a
// per-field message, everything else a generic one.
func HandleBindError(c *gin.Context, err error) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		out := make(map[string]string, len(verrs))

		for _, fe := range verrs {
			out[fe.Field()] = fmt.Sprintf("must satisfy %s", fe.Tag())
		}

		logrus.WithError(err).Warn(out)
		WriteErr(c, http.StatusBadRequest, fmt.Sprintf("invalid request data: %v", out))
		return
	}

	logrus.WithError(err).Warn("invalid request data")
	WriteErr(c, http.StatusBadRequest, "invalid request data")
}

// EncodeInstruction maps a decoded instruction into the response DTO:
// base58 keys, base64 payload.
func EncodeInstruction(inst domain.Instruction) dto.InstructionData {
	accounts := make([]dto.AccountMetaInfo, 0, len(inst.Accounts))
	for _, a := range inst.Accounts {
		accounts = append(accounts, dto.AccountMetaInfo{
			Pubkey:     a.PublicKey.String(),
			IsSigner:   a.IsSigner,
			IsWritable: a.IsWritable,
		})
	}

	return dto.InstructionData{
		ProgramID:       inst.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: Encode(inst.Data),
	}
}
