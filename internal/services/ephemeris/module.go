package ephemeris

import (
	"context"
	"fmt"
	"strings"
	"time"

	ephemerisAdapter "github.com/admin/astro-services/natal-api/internal/adapters/secondary/ephemeris"
	"github.com/admin/astro-services/natal-api/internal/domain"
	"github.com/admin/astro-services/natal-api/internal/ports/service"
)

// activePoints планеты, которые запрашиваем у API
var activePoints = []string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}

// Service реализует IEphemerisService поверх клиента эфемеридного API
type Service struct {
	client *ephemerisAdapter.Client
}

// New создаёт новый сервис для работы с эфемеридным API
func New(client *ephemerisAdapter.Client) service.IEphemerisService {
	return &Service{
		client: client,
	}
}

// CalculatePositions рассчитывает позиции планет для момента и места.
// Геокодинг города и определение часового пояса остаются на стороне API
func (s *Service) CalculatePositions(ctx context.Context, moment time.Time, place string) (domain.Positions, error) {
	city, countryCode := parsePlace(place)

	req := ephemerisAdapter.PositionsRequest{
		Subject: ephemerisAdapter.Person{
			Name: "Subject", // имя не влияет на расчёт
			BirthData: ephemerisAdapter.BirthData{
				Year:        moment.Year(),
				Month:       int(moment.Month()),
				Day:         moment.Day(),
				Hour:        moment.Hour(),
				Minute:      moment.Minute(),
				Second:      moment.Second(),
				City:        city,
				CountryCode: countryCode,
			},
		},
		Options: ephemerisAdapter.PositionsOptions{
			HouseSystem:  "P", // Плацидус
			ZodiacType:   "Tropic",
			ActivePoints: activePoints,
			Precision:    2,
		},
	}

	resp, err := s.client.CalculatePositions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate positions: %w", err)
	}

	if len(resp.RawJSON) == 0 {
		return nil, fmt.Errorf("ephemeris API returned empty response")
	}

	if resp.Status != "" && resp.Status != "success" {
		return nil, fmt.Errorf("ephemeris API returned error: status=%s, code=%d, message=%s",
			resp.Status, resp.Code, resp.Message)
	}

	return domain.Positions(resp.RawJSON), nil
}

// parsePlace парсит место на город и код страны.
// Ожидаемые форматы: "City, CountryCode" или "City" (код страны тогда пустой,
// API резолвит город самостоятельно)
func parsePlace(place string) (city, countryCode string) {
	place = strings.TrimSpace(place)
	if place == "" {
		return "Unknown", ""
	}

	if i := strings.Index(place, ","); i >= 0 {
		city = strings.TrimSpace(place[:i])
		countryCode = strings.TrimSpace(place[i+1:])
		return city, countryCode
	}

	return place, ""
}
