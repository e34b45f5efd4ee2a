package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/solbridge/solbridge/internal/handler/instruction_handler"
	"github.com/solbridge/solbridge/internal/handler/wallet_handler"
	"github.com/solbridge/solbridge/internal/middleware"
)

// RegisterRoutes wires the endpoint table. Every endpoint shares the body
// caps and the per-IP limiter; the key-consuming ones also go through the
// failed-attempt limiter.
func RegisterRoutes(r *gin.Engine, walletHandler *wallet_handler.WalletHandler, instrHandler *instruction_handler.InstructionHandler,
	apiLimiter gin.HandlerFunc, attemptLimiter gin.HandlerFunc,
) {
	api := r.Group("/")
	api.Use(
		middleware.MaxSizeMiddleware(middleware.MaxBodySize),
		middleware.MaxStreamMiddleware(middleware.MaxBodySize),
		apiLimiter,
	)

	{
		api.POST("/keypair", walletHandler.Generate)

		messageGroup := api.Group("/message", attemptLimiter)
		{
			messageGroup.POST("/sign", walletHandler.Sign)
			messageGroup.POST("/verify", walletHandler.Verify)
		}

		tokenGroup := api.Group("/token", attemptLimiter)
		{
			tokenGroup.POST("/create", instrHandler.CreateToken)
			tokenGroup.POST("/mint", instrHandler.MintToken)
		}

		sendGroup := api.Group("/send", attemptLimiter)
		{
			sendGroup.POST("/sol", instrHandler.SendSol)
			sendGroup.POST("/token", instrHandler.SendToken)
		}
	}
}
