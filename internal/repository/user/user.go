package userRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	ports "github.com/admin/astro-services/natal-api/internal/ports/repository"

	"log/slog"

	"github.com/admin/astro-services/natal-api/internal/domain"
	"github.com/admin/astro-services/natal-api/internal/ports/persistence"
	"github.com/google/uuid"
)

type userColumns struct {
	TableName string
	ID        string
	Name      string
	BirthDate string
	BirthTime string
	City      string
	Positions string
	CreatedAt string
	UpdatedAt string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns userColumns
}

// New создаёт новый репозиторий для работы с записями о рождении
func New(db persistence.Persistence, log *slog.Logger) ports.IUserRepo {
	cols := userColumns{
		TableName: "users",
		ID:        "id",
		Name:      "name",
		BirthDate: "birthdate",
		BirthTime: "birthtime",
		City:      "city",
		Positions: "positions",
		CreatedAt: "created_at",
		UpdatedAt: "updated_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками (8 колонок)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.Name,
		r.columns.BirthDate,
		r.columns.BirthTime,
		r.columns.City,
		r.columns.Positions,
		r.columns.CreatedAt,
		r.columns.UpdatedAt)
}

// Save сохраняет запись о рождении. Поиск существующей записи и запись идут
// в одной транзакции: при повторе тех же данных рождения обновляются позиции
// последней записи, иначе вставляется новая. При обновлении user.ID
// заменяется на идентификатор существующей записи
func (r *Repository) Save(ctx context.Context, user *domain.User) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx persistence.Transaction) error {
		findQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3 AND %s = $4 ORDER BY %s DESC LIMIT 1`,
			r.columns.ID,
			r.columns.TableName,
			r.columns.Name,
			r.columns.BirthDate,
			r.columns.BirthTime,
			r.columns.City,
			r.columns.CreatedAt)

		var existingID uuid.UUID
		err := tx.Get(ctx, &existingID, findQuery,
			user.Name, user.BirthDate, user.BirthTime, user.City)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			insertQuery := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				r.columns.TableName,
				r.allColumns())
			return tx.Exec(ctx, insertQuery,
				user.ID,
				user.Name,
				user.BirthDate,
				user.BirthTime,
				user.City,
				user.Positions,
				user.CreatedAt,
				user.UpdatedAt)
		case err != nil:
			return err
		}

		updateQuery := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
			r.columns.TableName,
			r.columns.Positions,
			r.columns.UpdatedAt,
			r.columns.ID)
		rowsAffected, err := tx.ExecWithResult(ctx, updateQuery,
			existingID, user.Positions, time.Now())
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return fmt.Errorf("user %s disappeared during update", existingID)
		}

		user.ID = existingID
		return nil
	})
	if err != nil {
		r.Log.Error("failed to save user",
			"error", err,
			"user_id", user.ID,
			"name", user.Name)
		return fmt.Errorf("failed to save user: %w", err)
	}

	r.Log.Debug("user saved successfully",
		"user_id", user.ID,
		"name", user.Name)
	return nil
}

// GetLatestByName получает последнюю запись с указанным именем
func (r *Repository) GetLatestByName(ctx context.Context, name string) (*domain.User, error) {
	var user domain.User
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT 1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.Name,
		r.columns.CreatedAt)
	err := r.db.Get(ctx, &user, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		r.Log.Error("failed to get user by name",
			"error", err,
			"name", name)
		return nil, fmt.Errorf("failed to get user by name: %w", err)
	}
	return &user, nil
}
