package kafka

import (
	"context"

	"github.com/admin/astro-services/natal-api/internal/domain"
	"github.com/google/uuid"
)

// IProducer интерфейс для отправки событий в Kafka
type IProducer interface {
	// SendChartComputed публикует событие о рассчитанной натальной карте
	SendChartComputed(ctx context.Context, userID uuid.UUID, name string, positions domain.Positions) error
	// Close закрывает producer
	Close() error
}
