package handlers

import (
	"net/http"

	"salary-predictor-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	info := h.salarySvc.Model()

	if err := h.salarySvc.Ready(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status: "unhealthy",
			Model:  info.Description,
			Error:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Model:    info.Description,
		Features: info.Features,
	})
}
