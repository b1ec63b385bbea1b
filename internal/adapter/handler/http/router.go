package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/usdtgate/usdtgate/internal/adapter/config"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.PayServer,
	paymentHandler *PaymentHandler,
	notifyHandler *NotifyHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		payment := api.Group("/payment")
		{
			payment.GET("/methods", paymentHandler.ListMethods)
			payment.POST("", paymentHandler.CreatePayment)
			payment.GET("/:trade_no", paymentHandler.GetOrder)

			notify := payment.Group("/notify")
			{
				notify.Use(notifyAuth(conf.AuthSecret))
				notify.POST("", notifyHandler.HandleNotification)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
