package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/fantasy-stats-service/internal/service"
	"github.com/maxviazov/fantasy-stats-service/pkg/response"
)

type LeagueHandler struct {
	svc service.LeagueService
}

func NewLeagueHandler(svc service.LeagueService) *LeagueHandler { return &LeagueHandler{svc: svc} }

func (h *LeagueHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/leagues")
	{
		g.GET("/", h.list)
		g.GET("/:league_id/", h.getByID)
	}
}

func (h *LeagueHandler) list(c *gin.Context) {
	qp := newQueryParser(c)
	p := qp.page()
	if err := qp.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	leagues, err := h.svc.ListLeagues(c.Request.Context(), p)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, leagues)
}

func (h *LeagueHandler) getByID(c *gin.Context) {
	id, err := pathID(c, "league_id")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	league, err := h.svc.GetLeague(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, league)
}
