package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/fantasy-stats-service/internal/service"
	"github.com/maxviazov/fantasy-stats-service/pkg/response"
)

type PerformanceHandler struct {
	svc service.PerformanceService
}

func NewPerformanceHandler(svc service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{svc: svc}
}

func (h *PerformanceHandler) Register(r *gin.RouterGroup) {
	r.GET("/performances/", h.list)
}

func (h *PerformanceHandler) list(c *gin.Context) {
	qp := newQueryParser(c)
	q := service.PerformanceQuery{
		PageParams:         qp.page(),
		MinLastChangedDate: qp.date("minimum_last_changed_date"),
	}
	if err := qp.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	perfs, err := h.svc.ListPerformances(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, perfs)
}
