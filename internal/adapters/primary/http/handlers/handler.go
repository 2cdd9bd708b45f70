package handlers

import (
	"salary-predictor-service/internal/config"
	"salary-predictor-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	salarySvc *services.SalaryService
	ui        config.UIConfig
}

func New(salarySvc *services.SalaryService, ui config.UIConfig) *Handler {
	return &Handler{
		salarySvc: salarySvc,
		ui:        ui,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	// Salary form
	r.GET("/", h.ShowForm)
	r.POST("/", h.Estimate)

	// Probes
	r.GET("/healthz", h.Health)
}
