package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/fantasy-stats-service/internal/service"
	"github.com/maxviazov/fantasy-stats-service/pkg/response"
)

type CountsHandler struct {
	svc service.CountsService
}

func NewCountsHandler(svc service.CountsService) *CountsHandler { return &CountsHandler{svc: svc} }

func (h *CountsHandler) Register(r *gin.RouterGroup) {
	r.GET("/counts/", h.get)
}

func (h *CountsHandler) get(c *gin.Context) {
	counts, err := h.svc.GetCounts(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, counts)
}
