package http

import (
	"github.com/akozyrev/storepay/internal/adapter/config"
	"github.com/akozyrev/storepay/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	userHandler *UserHandler,
	staffHandler *StaffHandler,
	webhookHandler *WebhookHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("/platega", webhookHandler.Platega)
		webhooks.POST("/cryptopay", webhookHandler.CryptoPay)
	}

	api := router.Group("/api")
	{
		api.POST("/orders", orderHandler.CreateCheckout)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.POST("/selection", orderHandler.ApplySelection)
		api.POST("/users/:id/referrer", userHandler.SetReferrer)

		staff := api.Group("/staff")
		{
			staff.POST("/login", staffHandler.Login)

			private := staff.Group("")
			{
				private.Use(authCheck(&staffHandler.Handler, tokenService))
				private.GET("/orders", staffHandler.ListOrders)
				private.POST("/orders/:id/requeue", staffHandler.RequeueOrder)
				private.GET("/users/:id", userHandler.GetUser)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
