package instruction_handler

import (
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/solbridge/solbridge/internal/dto"
	"github.com/solbridge/solbridge/internal/handler/utils"
)

// @Summary     Build an SPL transfer instruction
// @Description Builds the SPL-token transfer instruction. The mint key is
// @Description used as the source token account, matching the wire format of
// @Description earlier deployments.
// @Tags        transfer
// @Accept      json
// @Produce     json
// @Param       input body     dto.SendTokenReq true "Destination, mint, owner and amount"
// @Success     200   {object} dto.APIResponse{data=dto.InstructionData} "Instruction"
// @Failure     400   {object} dto.APIResponse                           "Malformed request or key"
// @Router      /send/token [post]
func (h *InstructionHandler) SendToken(c *gin.Context) {
	const op = "location internal.handler.instruction.SendToken"

	var req dto.SendTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	mint, err := solana.PublicKeyFromBase58(req.Mint)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Invalid mint")
		return
	}

	dest, err := solana.PublicKeyFromBase58(req.Destination)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Invalid destination")
		return
	}

	owner, err := solana.PublicKeyFromBase58(req.Owner)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Invalid owner")
		return
	}

	inst, err := h.svc.TokenTransfer(c, mint, dest, owner, *req.Amount)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Instruction error: "+err.Error())
		return
	}

	utils.WriteOK(c, utils.EncodeInstruction(inst))
}
