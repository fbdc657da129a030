package repository

import (
	"context"

	"github.com/admin/astro-services/natal-api/internal/domain"
)

// IUserRepo репозиторий записей о рождении
type IUserRepo interface {
	// Save сохраняет запись: обновляет последнюю запись с теми же данными
	// рождения или вставляет новую
	Save(ctx context.Context, user *domain.User) error
	GetLatestByName(ctx context.Context, name string) (*domain.User, error)
}
