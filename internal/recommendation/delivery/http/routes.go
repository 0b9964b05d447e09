package http

import (
	"github.com/gin-gonic/gin"

	"hr-recommendation/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	recs := rg.Group("/recommendations", mw.RateLimit())
	{
		recs.POST("", h.Generate)
		recs.POST("/fallback", h.Fallback)
		recs.POST("/prompt", h.Prompt)
	}
}
