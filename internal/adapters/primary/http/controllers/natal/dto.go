package natalController

import "encoding/json"

// NatalChartReq тело запроса на расчёт натальной карты.
// Все поля строковые, обязательность проверяется в usecase
type NatalChartReq struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthdate"`
	BirthTime string `json:"birthtime"`
	City      string `json:"city"`
}

// NatalChartResp ответ с рассчитанными позициями.
// positions отдаётся как пришёл от эфемеридного API
type NatalChartResp struct {
	Name      string          `json:"name"`
	Positions json.RawMessage `json:"positions"`
}
