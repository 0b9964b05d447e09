package http

import (
	"github.com/gin-gonic/gin"
)

// processMetricsReq binds the employee metrics body.
func (h *handler) processMetricsReq(c *gin.Context) (metricsReq, error) {
	var req metricsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "recommendation.http.processMetricsReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}
