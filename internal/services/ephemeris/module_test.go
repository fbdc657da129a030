package ephemeris

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ephemerisAdapter "github.com/admin/astro-services/natal-api/internal/adapters/secondary/ephemeris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlace(t *testing.T) {
	tests := []struct {
		place       string
		wantCity    string
		wantCountry string
	}{
		{"Paris, FR", "Paris", "FR"},
		{"Paris,FR", "Paris", "FR"},
		{"London", "London", ""},
		{"  Buenos Aires , AR ", "Buenos Aires", "AR"},
		{"", "Unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.place, func(t *testing.T) {
			city, country := parsePlace(tt.place)
			assert.Equal(t, tt.wantCity, city)
			assert.Equal(t, tt.wantCountry, country)
		})
	}
}

func TestCalculatePositions_RequestMapping(t *testing.T) {
	var got ephemerisAdapter.PositionsRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"status":"success","planets":[]}`))
	}))
	defer srv.Close()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := ephemerisAdapter.NewClient(&ephemerisAdapter.Config{BaseURL: srv.URL, ApiVersion: "v1"}, log)
	svc := New(client)

	moment := time.Date(1990, 4, 15, 8, 30, 0, 0, time.UTC)
	positions, err := svc.CalculatePositions(context.Background(), moment, "Paris, FR")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","planets":[]}`, string(positions))

	assert.Equal(t, 1990, got.Subject.BirthData.Year)
	assert.Equal(t, 4, got.Subject.BirthData.Month)
	assert.Equal(t, 15, got.Subject.BirthData.Day)
	assert.Equal(t, 8, got.Subject.BirthData.Hour)
	assert.Equal(t, 30, got.Subject.BirthData.Minute)
	assert.Equal(t, "Paris", got.Subject.BirthData.City)
	assert.Equal(t, "FR", got.Subject.BirthData.CountryCode)
	assert.Equal(t, "P", got.Options.HouseSystem)
	assert.Equal(t, "Tropic", got.Options.ZodiacType)
	assert.Equal(t, activePoints, got.Options.ActivePoints)
}

func TestCalculatePositions_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","code":422,"message":"unknown city"}`))
	}))
	defer srv.Close()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := ephemerisAdapter.NewClient(&ephemerisAdapter.Config{BaseURL: srv.URL, ApiVersion: "v1"}, log)
	svc := New(client)

	_, err := svc.CalculatePositions(context.Background(), time.Now(), "Atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=error")
	assert.Contains(t, err.Error(), "unknown city")
}
