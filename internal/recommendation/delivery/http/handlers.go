package http

import (
	"github.com/gin-gonic/gin"

	"hr-recommendation/pkg/response"
)

// Generate godoc
// @Summary     Generate recommendations
// @Description Returns 1 to 4 recommendations for an employee. Provider failures are answered by the rule engine, never with an error.
// @Tags        Recommendations
// @Accept      json
// @Produce     json
// @Param       body body metricsReq true "Employee metrics"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/recommendations [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMetricsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output := h.uc.Generate(ctx, req.toInput())
	response.OK(c, h.newGenerateResp(output))
}

// Fallback godoc
// @Summary     Rule-based recommendations
// @Description Runs only the threshold rules, without calling a provider.
// @Tags        Recommendations
// @Accept      json
// @Produce     json
// @Param       body body metricsReq true "Employee metrics"
// @Success     200  {object} fallbackResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/recommendations/fallback [POST]
func (h *handler) Fallback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMetricsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newFallbackResp(h.uc.Fallback(ctx, req.toInput())))
}

// Prompt godoc
// @Summary     Render the provider prompt
// @Description Returns the prompt that would be sent to the provider and the risk level it embeds.
// @Tags        Recommendations
// @Accept      json
// @Produce     json
// @Param       body body metricsReq true "Employee metrics"
// @Success     200  {object} promptResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/recommendations/prompt [POST]
func (h *handler) Prompt(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMetricsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newPromptResp(h.uc.Prompt(ctx, req.toInput())))
}
