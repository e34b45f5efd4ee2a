package instruction_handler

import (
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/solbridge/solbridge/internal/dto"
	"github.com/solbridge/solbridge/internal/handler/utils"
)

// @Summary     Build a mint-to instruction
// @Description Builds the SPL-token mint-to instruction crediting amount
// @Description base units to the destination token account.
// @Tags        token
// @Accept      json
// @Produce     json
// @Param       input body     dto.MintTokenReq true "Mint, destination, authority and amount"
// @Success     200   {object} dto.APIResponse{data=dto.InstructionData} "Instruction"
// @Failure     400   {object} dto.APIResponse                           "Malformed request or key"
// @Router      /token/mint [post]
func (h *InstructionHandler) MintToken(c *gin.Context) {
	const op = "location internal.handler.instruction.MintToken"

	var req dto.MintTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	mint, err := solana.PublicKeyFromBase58(req.Mint)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Invalid mint pubkey")
		return
	}

	dest, err := solana.PublicKeyFromBase58(req.Destination)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Invalid destination pubkey")
		return
	}

	auth, err := solana.PublicKeyFromBase58(req.Authority)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Invalid authority pubkey")
		return
	}

	inst, err := h.svc.MintTo(c, mint, dest, auth, *req.Amount)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Instruction error: "+err.Error())
		return
	}

	utils.WriteOK(c, utils.EncodeInstruction(inst))
}
