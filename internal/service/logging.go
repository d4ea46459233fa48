package service

import (
	"errors"

	"github.com/maxviazov/fantasy-stats-service/internal/projection"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

// logFailure picks the level by error kind: client mistakes stay at debug, outages at warn.
func logFailure(l zerolog.Logger, err error, op string) {
	var ev *zerolog.Event
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, repository.ErrNotFound):
		ev = l.Debug()
	case errors.Is(err, repository.ErrUnavailable):
		ev = l.Warn()
	default:
		ev = l.Error()
	}
	ev.Err(err).Str("op", op).Msg("operation failed")
}

func reportAnomalies(l zerolog.Logger, anomalies []projection.Anomaly) {
	for _, a := range anomalies {
		l.Warn().
			Str("anomaly", a.Kind).
			Int64("team_id", a.TeamID).
			Str("dangling_ref", a.Dangling).
			Msg("integrity anomaly: related row omitted")
	}
}
