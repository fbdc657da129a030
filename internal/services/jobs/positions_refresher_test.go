package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/admin/astro-services/natal-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEphemeris struct {
	positions domain.Positions
	err       error
}

func (f *fakeEphemeris) CalculatePositions(ctx context.Context, moment time.Time, city string) (domain.Positions, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.positions, nil
}

type fakeCache struct {
	data map[string]string
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeCache) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPositionsRefresher_NextRun(t *testing.T) {
	j := NewPositionsRefresher(&fakeEphemeris{}, &fakeCache{data: map[string]string{}}, "", testLogger())

	// До 05:00 UTC - запуск сегодня
	now := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC), j.NextRun(now))

	// После 05:00 UTC - запуск завтра
	now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 11, 5, 0, 0, 0, time.UTC), j.NextRun(now))

	// Ровно в 05:00 - тоже завтра
	now = time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 11, 5, 0, 0, 0, time.UTC), j.NextRun(now))
}

func TestPositionsRefresher_Run(t *testing.T) {
	cache := &fakeCache{data: map[string]string{}}
	j := NewPositionsRefresher(&fakeEphemeris{positions: domain.Positions(`{"planets":[]}`)}, cache, "Greenwich, GB", testLogger())

	require.NoError(t, j.Run(context.Background()))
	assert.Equal(t, `{"planets":[]}`, cache.data[CurrentPositionsKey])
}

func TestPositionsRefresher_RunPropagatesError(t *testing.T) {
	cache := &fakeCache{data: map[string]string{}}
	j := NewPositionsRefresher(&fakeEphemeris{err: errors.New("api down")}, cache, "", testLogger())

	require.Error(t, j.Run(context.Background()))
	assert.Empty(t, cache.data)
}

func TestPositionsRefresher_Name(t *testing.T) {
	j := NewPositionsRefresher(&fakeEphemeris{}, &fakeCache{data: map[string]string{}}, "", testLogger())
	assert.Equal(t, "positions-refresher", j.Name())
}
