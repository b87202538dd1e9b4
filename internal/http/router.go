// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipcost/internal/http/handlers"
	"shipcost/internal/http/middleware"
	"shipcost/internal/modules/quote"
)

func NewRouter(quoteService *quote.Service) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	quoteHandler := handlers.NewQuoteHandler(quoteService)
	api := r.Group("/api/shipping")
	api.GET("/rate", quoteHandler.Rate)
	api.POST("/quotes", quoteHandler.Issue)
	api.GET("/quotes", quoteHandler.History)
	api.GET("/quotes/:id", quoteHandler.Get)
	api.GET("/zones/:prefix", quoteHandler.Zone)
	api.GET("/tiers", quoteHandler.RateCard)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return r
}
