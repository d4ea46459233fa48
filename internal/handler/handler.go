package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/fantasy-stats-service/internal/service"
	"github.com/rs/zerolog"
)

var errPanic = errors.New("handler panic")

// Services groups the read use cases exposed over HTTP.
type Services struct {
	Players      service.PlayerService
	Performances service.PerformanceService
	Leagues      service.LeagueService
	Teams        service.TeamService
	Weeks        service.WeekService
	Counts       service.CountsService
}

// NewRouter builds the engine with the middleware chain and every route mounted.
func NewRouter(logger zerolog.Logger, repo Pinger, svcs Services, queryTimeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(logger), Recovery(logger))
	Register(r, repo, svcs, queryTimeout)
	return r
}

// Register mounts all public routes on the given engine, once at the root and once under /v0.
func Register(r *gin.Engine, repo Pinger, svcs Services, queryTimeout time.Duration) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	RegisterDocs(r)

	for _, api := range []*gin.RouterGroup{r.Group(""), r.Group(APIV0Prefix)} {
		api.GET("/", h.Root)
		api.Use(QueryTimeout(queryTimeout))
		NewPlayerHandler(svcs.Players).Register(api)
		NewPerformanceHandler(svcs.Performances).Register(api)
		NewLeagueHandler(svcs.Leagues).Register(api)
		NewTeamHandler(svcs.Teams).Register(api)
		NewWeekHandler(svcs.Weeks).Register(api)
		NewCountsHandler(svcs.Counts).Register(api)
	}
}
