package domain

import (
	"time"

	"github.com/google/uuid"
)

// User запись о рождении, сохранённая при расчёте натальной карты.
// birthdate/birthtime хранятся строками, как прислал клиент:
// парсинг нужен только для запроса к эфемеридам, не для хранения.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	BirthDate string    `json:"birthdate" db:"birthdate"`
	BirthTime string    `json:"birthtime" db:"birthtime"`
	City      string    `json:"city" db:"city"`
	Positions Positions `json:"positions,omitempty" db:"positions"` // JSONB
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
