package ephemeris

// BirthData дата, время и место для расчёта позиций
type BirthData struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Second      int    `json:"second,omitempty"`
	City        string `json:"city"`
	CountryCode string `json:"country_code,omitempty"`
}

// Person субъект расчёта
type Person struct {
	Name      string    `json:"name"`
	BirthData BirthData `json:"birth_data"`
}

// PositionsOptions опции для запроса позиций
type PositionsOptions struct {
	HouseSystem  string   `json:"house_system"` // "P" для Плацидуса
	ZodiacType   string   `json:"zodiac_type"`  // "Tropic" для тропического
	ActivePoints []string `json:"active_points"`
	Precision    int      `json:"precision"`
}

// PositionsRequest запрос на расчёт позиций
type PositionsRequest struct {
	Subject Person           `json:"subject"`
	Options PositionsOptions `json:"options"`
}

// PositionsResponse ответ API позиций. Тело ответа сохраняется целиком:
// его формат определяет внешний API, мы его не разбираем.
type PositionsResponse struct {
	Status  string `json:"status,omitempty"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	RawJSON []byte `json:"-"`
}
