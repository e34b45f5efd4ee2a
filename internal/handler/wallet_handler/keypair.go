package wallet_handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/solbridge/solbridge/internal/dto"
	"github.com/solbridge/solbridge/internal/handler/utils"
)

// @Summary     Generate a keypair
// @Description Generates a random ed25519 keypair.
// @Description pubkey - base58-encoded 32-byte public key
// @Description secret - base58-encoded 64-byte keypair (seed || public key)
// @Tags        keypair
// @Produce     json
// @Success     200 {object} dto.APIResponse{data=dto.KeypairData} "Generated keypair"
// @Failure     500 {object} dto.APIResponse                       "Internal error"
// @Router      /keypair [post]
func (h *WalletHandler) Generate(c *gin.Context) {
	const op = "location internal.handler.wallet.Generate"

	kp, err := h.svc.Generate(c)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusInternalServerError, "keypair generation failed")
		return
	}

	utils.WriteOK(c, dto.KeypairData{
		Pubkey: kp.PublicKey.String(),
		Secret: kp.Secret.String(),
	})
}
