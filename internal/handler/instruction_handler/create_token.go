package instruction_handler

import (
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/solbridge/solbridge/internal/dto"
	"github.com/solbridge/solbridge/internal/handler/utils"
)

// @Summary     Build an initialize-mint instruction
// @Description Builds the SPL-token initialize-mint instruction for a new
// @Description mint account with the given decimals and mint authority.
// @Tags        token
// @Accept      json
// @Produce     json
// @Param       input body     dto.CreateTokenReq true "Mint, authority and decimals"
// @Success     200   {object} dto.APIResponse{data=dto.InstructionData} "Instruction"
// @Failure     400   {object} dto.APIResponse                           "Malformed request or key"
// @Router      /token/create [post]
func (h *InstructionHandler) CreateToken(c *gin.Context) {
	const op = "location internal.handler.instruction.CreateToken"

	var req dto.CreateTokenReq
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

	authority, err := solana.PublicKeyFromBase58(req.MintAuthority)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Invalid authority pubkey")
		return
	}

	inst, err := h.svc.InitializeMint(c, mint, authority, *req.Decimals)
	if err != nil {
		logrus.Errorf("%s: %v", op, err)
		utils.WriteErr(c, http.StatusBadRequest, "Instruction error: "+err.Error())
		return
	}

	utils.WriteOK(c, utils.EncodeInstruction(inst))
}
