package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/fantasy-stats-service/internal/service"
	"github.com/maxviazov/fantasy-stats-service/pkg/response"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(svc service.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

func (h *TeamHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/teams")
	{
		g.GET("/", h.list)
		g.GET("/:team_id/", h.getByID)
	}
}

func (h *TeamHandler) list(c *gin.Context) {
	qp := newQueryParser(c)
	q := service.TeamQuery{
		PageParams: qp.page(),
		TeamName:   qp.text("team_name"),
		LeagueID:   qp.id("league_id"),
	}
	if err := qp.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	teams, err := h.svc.ListTeams(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, teams)
}

func (h *TeamHandler) getByID(c *gin.Context) {
	id, err := pathID(c, "team_id")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	team, err := h.svc.GetTeam(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}
