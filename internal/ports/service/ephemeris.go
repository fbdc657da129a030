package service

import (
	"context"
	"time"

	"github.com/admin/astro-services/natal-api/internal/domain"
)

// IEphemerisService сервис расчёта позиций планет через внешний астро-API.
// Геокодинг города и часовой пояс остаются на стороне API.
type IEphemerisService interface {
	CalculatePositions(ctx context.Context, moment time.Time, city string) (domain.Positions, error)
}
