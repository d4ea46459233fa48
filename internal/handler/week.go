package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/fantasy-stats-service/internal/service"
	"github.com/maxviazov/fantasy-stats-service/pkg/response"
)

type WeekHandler struct {
	svc service.WeekService
}

func NewWeekHandler(svc service.WeekService) *WeekHandler { return &WeekHandler{svc: svc} }

func (h *WeekHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/weeks")
	{
		g.GET("/", h.list)
		// week numbers are text keys, so no integer parsing here
		g.GET("/:week_number/", h.getByNumber)
	}
}

func (h *WeekHandler) list(c *gin.Context) {
	qp := newQueryParser(c)
	p := qp.page()
	if err := qp.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	weeks, err := h.svc.ListWeeks(c.Request.Context(), p)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, weeks)
}

func (h *WeekHandler) getByNumber(c *gin.Context) {
	week, err := h.svc.GetWeek(c.Request.Context(), c.Param("week_number"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, week)
}
