package handlers

import (
	"net/http"
	response "openreaders_payments/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	gatewayConfigured bool
}

func NewHealthHandler(gatewayConfigured bool) *HealthHandler {
	return &HealthHandler{gatewayConfigured: gatewayConfigured}
}

// Health reports liveness and whether gateway credentials are configured.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Status:   "OK",
		Message:  "Payment server is running",
		Razorpay: h.gatewayConfigured,
	})
}
