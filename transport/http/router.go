package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/locki-io/locki-id-addon/service"
)

// SetupRouter sets up the Gin router exposing the panel actions.
func SetupRouter(sessions *service.SessionService, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log))

	handlers := NewPanelHandlers(sessions)

	panel := router.Group("/panel")
	{
		panel.GET("/status", handlers.Status)
		panel.POST("/login", handlers.Login)
		panel.POST("/validate", handlers.Validate)
		panel.POST("/logout", handlers.Logout)
		panel.POST("/nonce/refresh", handlers.RefreshNonce)
		panel.POST("/nfts/refresh", handlers.RefreshNFTs)
		panel.GET("/nfts", handlers.NFTs)
	}

	return router
}
