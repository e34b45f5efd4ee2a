package wallet_handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/solbridge/solbridge/internal/dto"
	"github.com/solbridge/solbridge/internal/handler/utils"
	"github.com/solbridge/solbridge/internal/service/wallet_service"
)

// @Summary     Verify a message signature
// @Description Verifies a detached ed25519 signature. A well-formed but
// @Description non-matching signature yields valid=false in the success
// @Description envelope; malformed inputs yield the error envelope.
// @Tags        message
// @Accept      json
// @Produce     json
// @Param       input body     dto.VerifyMessageReq true "Message, base64 signature and base58 pubkey"
// @Success     200   {object} dto.APIResponse{data=dto.VerifyMessageData} "Verification result"
// @Failure     400   {object} dto.APIResponse                             "Malformed request, pubkey or signature"
// @Router      /message/verify [post]
func (h *WalletHandler) Verify(c *gin.Context) {
	const op = "location internal.handler.wallet.Verify"

	var req dto.VerifyMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	sig, err := utils.Decode(req.Signature)
	if err != nil {
		logrus.Errorf("%s: invalid base64 signature", op)
		utils.WriteErr(c, http.StatusBadRequest, "Invalid signature")
		return
	}

	valid, err := h.svc.Verify(c, req.Pubkey, sig, *req.Message)
	if err != nil {
		switch {
		case errors.Is(err, wallet_service.ErrInvalidPublicKey):
			logrus.Errorf("%s: %v", op, err)
			utils.WriteErr(c, http.StatusBadRequest, "Invalid pubkey")
		case errors.Is(err, wallet_service.ErrInvalidSignature):
			logrus.Errorf("%s: %v", op, err)
			utils.WriteErr(c, http.StatusBadRequest, "Invalid signature")
		default:
			logrus.Errorf("%s: %v", op, err)
			utils.WriteErr(c, http.StatusInternalServerError, "verification failed")
		}
		return
	}

	utils.WriteOK(c, dto.VerifyMessageData{
		Valid:   valid,
		Message: *req.Message,
		Pubkey:  req.Pubkey,
	})
}
