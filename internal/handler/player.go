package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/fantasy-stats-service/internal/service"
	"github.com/maxviazov/fantasy-stats-service/pkg/response"
)

type PlayerHandler struct {
	svc service.PlayerService
}

func NewPlayerHandler(svc service.PlayerService) *PlayerHandler { return &PlayerHandler{svc: svc} }

func (h *PlayerHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/players")
	{
		g.GET("/", h.list)
		g.GET("/:player_id/", h.getByID)
	}
}

func (h *PlayerHandler) list(c *gin.Context) {
	qp := newQueryParser(c)
	q := service.PlayerQuery{
		PageParams: qp.page(),
		FirstName:  qp.text("first_name"),
		LastName:   qp.text("last_name"),
	}
	if err := qp.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	players, err := h.svc.ListPlayers(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}

func (h *PlayerHandler) getByID(c *gin.Context) {
	id, err := pathID(c, "player_id")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	player, err := h.svc.GetPlayer(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}
