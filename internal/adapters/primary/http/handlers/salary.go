package handlers

import (
	"net/http"

	"salary-predictor-service/internal/adapters/primary/http/dto"
	"salary-predictor-service/internal/adapters/primary/http/view"
	"salary-predictor-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, view.PageTemplate, h.newPage(domain.DefaultEmployeeQuery()))
}

func (h *Handler) Estimate(c *gin.Context) {
	var form dto.EstimateForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, view.PageTemplate,
			h.newPage(form.ToQuery()).WithError(bindErrorMessage(err)))
		return
	}

	query := form.ToQuery()
	page := h.newPage(query)

	estimate, err := h.salarySvc.Estimate(c.Request.Context(), query)
	if err != nil {
		status, msg := mapDomainError(err)
		if status >= http.StatusInternalServerError {
			log.WithError(err).WithField("request_id", c.GetString("request_id")).Error("estimate salary failed")
		}
		c.HTML(status, view.PageTemplate, page.WithError(msg))
		return
	}

	c.HTML(http.StatusOK, view.PageTemplate, page.WithEstimate(h.ui, estimate, h.salarySvc.Model().Description))
}

func (h *Handler) newPage(q domain.EmployeeQuery) *view.Page {
	opts := h.salarySvc.Options()
	return view.NewPage(h.ui, q, opts.Education, opts.JobRoles)
}
