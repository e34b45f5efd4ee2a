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

// @Summary     Sign a message
// @Description Produces a detached ed25519 signature over the message text.
// @Description secret - base58-encoded 64-byte keypair, as returned by /keypair
// @Description signature - base64-encoded 64-byte signature
// @Tags        message
// @Accept      json
// @Produce     json
// @Param       input body     dto.SignMessageReq true "Message and secret key"
// @Success     200   {object} dto.APIResponse{data=dto.SignMessageData} "Signature"
// @Failure     400   {object} dto.APIResponse                           "Malformed request or secret"
// @Router      /message/sign [post]
func (h *WalletHandler) Sign(c *gin.Context) {
	const op = "location internal.handler.wallet.Sign"

	var req dto.SignMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	signed, err := h.svc.Sign(c, req.Secret, *req.Message)
	if err != nil {
		if errors.Is(err, wallet_service.ErrInvalidSecret) {
			logrus.Errorf("%s: %v", op, err)
			utils.WriteErr(c, http.StatusBadRequest, "Invalid secret")
			return
		}
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusInternalServerError, "signing failed")
		return
	}

	utils.WriteOK(c, dto.SignMessageData{
		Signature: utils.Encode(signed.Signature),
		PublicKey: signed.PublicKey.String(),
		Message:   signed.Message,
	})
}
