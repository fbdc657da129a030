package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/admin/astro-services/natal-api/internal/ports/cache"
	"github.com/admin/astro-services/natal-api/internal/ports/service"
)

const (
	refresherName = "positions-refresher"

	// CurrentPositionsKey ключ в кеше с позициями планет на текущие сутки
	CurrentPositionsKey = "ephemeris:positions:current"

	currentPositionsTTL = 48 * time.Hour
)

// PositionsRefresher джоба для обновления текущих позиций планет в кеше, каждый день в 05:00 UTC
type PositionsRefresher struct {
	ephemerisService service.IEphemerisService
	cache            cache.Cache
	city             string
	log              *slog.Logger
}

// NewPositionsRefresher создаёт новую джобу для обновления позиций планет
func NewPositionsRefresher(ephemerisService service.IEphemerisService, cache cache.Cache, city string, log *slog.Logger) *PositionsRefresher {
	if city == "" {
		city = "Greenwich, GB"
	}

	return &PositionsRefresher{
		ephemerisService: ephemerisService,
		cache:            cache,
		city:             city,
		log:              log,
	}
}

func (j *PositionsRefresher) Name() string {
	return refresherName
}

// NextRun вычисляет следующее время запуска
func (j *PositionsRefresher) NextRun(now time.Time) time.Time {
	nowUTC := now.UTC()

	next := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 5, 0, 0, 0, time.UTC)
	if next.Before(nowUTC) || next.Equal(nowUTC) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Run обновляет позиции планет на текущий момент в кеше
func (j *PositionsRefresher) Run(ctx context.Context) error {
	now := time.Now().UTC()

	positions, err := j.ephemerisService.CalculatePositions(ctx, now, j.city)
	if err != nil {
		return err
	}

	if err := j.cache.Set(ctx, CurrentPositionsKey, string(positions), currentPositionsTTL); err != nil {
		return err
	}

	j.log.Info("current positions refreshed",
		"cache_key", CurrentPositionsKey,
		"payload_size", len(positions),
	)
	return nil
}
