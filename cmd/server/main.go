package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	"github.com/solbridge/solbridge/config"
	"github.com/solbridge/solbridge/internal/handler/instruction_handler"
	"github.com/solbridge/solbridge/internal/handler/wallet_handler"
	"github.com/solbridge/solbridge/internal/middleware"
	"github.com/solbridge/solbridge/internal/routes"
	"github.com/solbridge/solbridge/internal/service/instruction_service"
	"github.com/solbridge/solbridge/internal/service/wallet_service"

	_ "github.com/solbridge/solbridge/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	binding.EnableDecoderDisallowUnknownFields = true // reject unknown request fields
}

// @title           SolBridge API
// @version         1.0
// @description     Stateless HTTP facade over Solana SDK primitives: keypair generation, SPL-token instruction construction, message signing/verification and transfer instruction building.
// @host            localhost:8080
func main() {
	cfg := config.MustLoad()

	// service layer
	walletService := wallet_service.NewService()
	instrService := instruction_service.NewService()

	// handler layer
	walletHandler := wallet_handler.NewWalletHandler(walletService)
	instrHandler := instruction_handler.NewInstructionHandler(instrService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiLimiter := middleware.NewIPRateLimiter(cfg.Limiter.RPC, cfg.Limiter.Burst, cfg.Limiter.TTL)
	attemptLimiter := middleware.FailedRequestLimiter()

	routes.RegisterRoutes(r, walletHandler, instrHandler, apiLimiter, attemptLimiter)

	logrus.Infof("Starting server on %s", cfg.HTTPServ.ServerAddr)
	if err := r.Run(cfg.HTTPServ.ServerAddr); err != nil {
		panic(err)
	}
}
