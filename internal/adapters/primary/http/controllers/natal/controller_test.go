package natalController

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/admin/astro-services/natal-api/internal/domain"
	natalUsecase "github.com/admin/astro-services/natal-api/internal/usecases/natal"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct{}

func (s *stubUserRepo) Save(ctx context.Context, user *domain.User) error { return nil }

func (s *stubUserRepo) GetLatestByName(ctx context.Context, name string) (*domain.User, error) {
	return nil, errors.New("user not found")
}

type stubEphemeris struct {
	positions domain.Positions
	err       error
}

func (s *stubEphemeris) CalculatePositions(ctx context.Context, moment time.Time, city string) (domain.Positions, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.positions, nil
}

func newTestRouter(eph *stubEphemeris) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := natalUsecase.New(&stubUserRepo{}, eph, nil, nil, log)
	controller := New(svc, log)

	router := gin.New()
	controller.RegisterRoutes(router)
	return router
}

func doRequest(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleNatalChart_OK(t *testing.T) {
	router := newTestRouter(&stubEphemeris{
		positions: domain.Positions(`{"planets":[{"name":"Sun","sign":"Aries","degree":24.9}]}`),
	})

	w := doRequest(router, "/natal_chart", `{
		"name": "Alice",
		"birthdate": "1990-04-15",
		"birthtime": "08:30",
		"city": "Paris, FR"
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Name      string          `json:"name"`
		Positions json.RawMessage `json:"positions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
	assert.JSONEq(t, `{"planets":[{"name":"Sun","sign":"Aries","degree":24.9}]}`, string(resp.Positions))
}

func TestHandleNatalChart_VersionedRoute(t *testing.T) {
	router := newTestRouter(&stubEphemeris{positions: domain.Positions(`{}`)})

	w := doRequest(router, "/api/v1/natal_chart", `{
		"name": "Bob",
		"birthdate": "1985-12-01",
		"birthtime": "23:59",
		"city": "London"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandleNatalChart_MalformedJSON(t *testing.T) {
	router := newTestRouter(&stubEphemeris{})

	w := doRequest(router, "/natal_chart", `{"name": "Alice",`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleNatalChart_MissingField(t *testing.T) {
	router := newTestRouter(&stubEphemeris{})

	w := doRequest(router, "/natal_chart", `{"name": "Alice", "birthdate": "1990-04-15"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "birthtime is required")
}

func TestHandleNatalChart_EphemerisFailure(t *testing.T) {
	router := newTestRouter(&stubEphemeris{err: errors.New("upstream timeout")})

	w := doRequest(router, "/natal_chart", `{
		"name": "Alice",
		"birthdate": "1990-04-15",
		"birthtime": "08:30",
		"city": "Paris, FR"
	}`)

	require.Equal(t, http.StatusBadGateway, w.Code)
	// Детали ошибки апстрима клиенту не отдаются
	assert.NotContains(t, w.Body.String(), "upstream timeout")
}
