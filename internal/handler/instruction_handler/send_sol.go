package instruction_handler

import (
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/solbridge/solbridge/internal/dto"
	"github.com/solbridge/solbridge/internal/handler/utils"
)

// @Summary     Build a native transfer instruction
// @Description Builds the system-program transfer instruction moving lamports
// @Description from sender to receiver. The account list is flat base58 keys.
// @Tags        transfer
// @Accept      json
// @Produce     json
// @Param       input body     dto.SendSolReq true "Sender, receiver and lamports"
// @Success     200   {object} dto.APIResponse{data=dto.SendSolData} "Instruction"
// @Failure     400   {object} dto.APIResponse                       "Malformed request or key"
// @Router      /send/sol [post]
func (h *InstructionHandler) SendSol(c *gin.Context) {
	const op = "location internal.handler.instruction.SendSol"

	var req dto.SendSolReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	from, err := solana.PublicKeyFromBase58(req.From)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Invalid from")
		return
	}

	to, err := solana.PublicKeyFromBase58(req.To)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Invalid to")
		return
	}

	inst, err := h.svc.SolTransfer(c, from, to, *req.Lamports)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Instruction error: "+err.Error())
		return
	}

	accounts := make([]string, 0, len(inst.Accounts))
	for _, a := range inst.Accounts {
		accounts = append(accounts, a.PublicKey.String())
	}

	utils.WriteOK(c, dto.SendSolData{
		ProgramID:       inst.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: utils.Encode(inst.Data),
	})
}
