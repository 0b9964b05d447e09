package http

import (
	"github.com/gin-gonic/gin"

	"hr-recommendation/internal/recommendation"
	"hr-recommendation/pkg/log"
)

// Handler is the public interface for the recommendation HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	Fallback(c *gin.Context)
	Prompt(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc recommendation.UseCase
}

// New creates a new HTTP handler for the recommendation domain.
func New(l log.Logger, uc recommendation.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
