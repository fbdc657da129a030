package domain

import "time"

// Positions - JSON представление позиций планет, как их вернул астро-API.
// Хранится в БД (JSONB) и отдаётся клиенту без разбора.
type Positions []byte

// BirthRecord данные о рождении из запроса на расчёт натальной карты.
// Все поля строковые, проверяются только на присутствие.
type BirthRecord struct {
	Name      string
	BirthDate string // "2006-01-02"
	BirthTime string // "15:04"
	City      string
}

// BirthMoment распарсенные дата и время рождения
func (b BirthRecord) BirthMoment() (time.Time, error) {
	return time.Parse("2006-01-02 15:04", b.BirthDate+" "+b.BirthTime)
}
