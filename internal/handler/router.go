package handler

import (
	"context"
	"net/http"

	_ "address-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Pinger reports whether the address store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterConfig holds everything NewRouter wires together
type RouterConfig struct {
	Addresses *AddressHandler
	Proximity *ProximityHandler
	DB        Pinger
	Metrics   http.Handler
	// Middleware runs after request id and access logging, e.g. metrics.
	Middleware []gin.HandlerFunc
	Log        zerolog.Logger
}

const welcomePage = `<html>
	<head>
		<title>Address API</title>
	</head>
	<body>
		<h1> Welcome to Address API </h1>
	</body>
</html>`

// NewRouter builds the gin engine serving the address API
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(cfg.Log))
	r.Use(cfg.Middleware...)

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(welcomePage))
	})

	r.GET("/health", func(c *gin.Context) {
		if err := cfg.DB.Ping(c.Request.Context()); err != nil {
			cfg.Log.Error().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/get_all_addresses", cfg.Addresses.ListAddresses)
	r.POST("/create_address", cfg.Addresses.CreateAddress)
	r.PUT("/update_address", cfg.Addresses.UpdateAddress)
	r.DELETE("/delete_address/:id", cfg.Addresses.DeleteAddress)
	r.GET("/get_address", cfg.Proximity.FindWithin)

	return r
}
