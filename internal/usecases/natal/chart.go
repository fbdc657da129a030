package natal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/admin/astro-services/natal-api/internal/domain"
	"github.com/google/uuid"
)

const positionsCacheTTL = 30 * 24 * time.Hour

// ComputeNatalChart рассчитывает позиции планет для присланных данных о
// рождении и сохраняет запись в БД. Позиции для фиксированного момента
// неизменны, поэтому повторные запросы обслуживаются из кеша или из уже
// сохранённой записи без похода к эфемеридному API.
func (s *Service) ComputeNatalChart(ctx context.Context, rec domain.BirthRecord) (*domain.User, error) {
	if err := validate(rec); err != nil {
		return nil, err
	}

	moment, err := rec.BirthMoment()
	if err != nil {
		return nil, &domain.ErrInvalidBirthMoment{
			Value: rec.BirthDate + " " + rec.BirthTime,
			Err:   err,
		}
	}

	positions, cached := s.cachedPositions(ctx, rec)
	if !cached {
		if stored := s.storedUser(ctx, rec); stored != nil {
			s.cachePositions(ctx, rec, stored.Positions)
			s.Log.Info("natal chart served from storage",
				"user_id", stored.ID,
				"birth_date", rec.BirthDate,
				"city", rec.City,
			)
			return stored, nil
		}

		positions, err = s.EphemerisService.CalculatePositions(ctx, moment, rec.City)
		if err != nil {
			s.Log.Error("failed to calculate positions",
				"error", err,
				"name", rec.Name,
				"birth_date", rec.BirthDate,
				"city", rec.City,
			)
			// Ошибка уже залогирована, выше по стеку её не логируют повторно
			return nil, domain.WrapBusinessError(fmt.Errorf("failed to calculate positions: %w", err))
		}
		s.cachePositions(ctx, rec, positions)
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.New(),
		Name:      rec.Name,
		BirthDate: rec.BirthDate,
		BirthTime: rec.BirthTime,
		City:      rec.City,
		Positions: positions,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Сохранение записи и публикация события не должны ронять запрос:
	// позиции уже рассчитаны, клиент их получит.
	// Save сам логирует свои ошибки
	_ = s.UserRepo.Save(ctx, user)

	if s.Producer != nil {
		if err := s.Producer.SendChartComputed(ctx, user.ID, user.Name, positions); err != nil {
			s.Log.Warn("failed to publish chart computed event",
				"error", err,
				"user_id", user.ID,
			)
		}
	}

	s.Log.Info("natal chart computed",
		"user_id", user.ID,
		"birth_date", rec.BirthDate,
		"birth_time", rec.BirthTime,
		"city", rec.City,
		"from_cache", cached,
		"positions_size", len(positions),
	)

	return user, nil
}

// validate проверяет присутствие всех полей (только присутствие, как и формат API)
func validate(rec domain.BirthRecord) error {
	switch {
	case strings.TrimSpace(rec.Name) == "":
		return domain.ErrNameRequired
	case strings.TrimSpace(rec.BirthDate) == "":
		return domain.ErrBirthDateRequired
	case strings.TrimSpace(rec.BirthTime) == "":
		return domain.ErrBirthTimeRequired
	case strings.TrimSpace(rec.City) == "":
		return domain.ErrCityRequired
	}
	return nil
}

// storedUser возвращает уже сохранённую запись с теми же данными рождения
// и непустыми позициями. Чтение best-effort: при любой ошибке считаем,
// что записи нет
func (s *Service) storedUser(ctx context.Context, rec domain.BirthRecord) *domain.User {
	stored, err := s.UserRepo.GetLatestByName(ctx, rec.Name)
	if err != nil || stored == nil {
		return nil
	}
	if stored.BirthDate != rec.BirthDate ||
		stored.BirthTime != rec.BirthTime ||
		stored.City != rec.City ||
		len(stored.Positions) == 0 {
		return nil
	}
	return stored
}

// cachedPositions пытается достать позиции из кеша
func (s *Service) cachedPositions(ctx context.Context, rec domain.BirthRecord) (domain.Positions, bool) {
	if s.Cache == nil {
		return nil, false
	}

	val, err := s.Cache.Get(ctx, positionsCacheKey(rec))
	if err != nil || val == "" {
		return nil, false
	}

	s.Log.Debug("positions served from cache", "cache_key", positionsCacheKey(rec))
	return domain.Positions(val), true
}

// cachePositions сохраняет позиции в кеш (best-effort)
func (s *Service) cachePositions(ctx context.Context, rec domain.BirthRecord, positions domain.Positions) {
	if s.Cache == nil {
		return
	}

	key := positionsCacheKey(rec)
	if err := s.Cache.Set(ctx, key, string(positions), positionsCacheTTL); err != nil {
		s.Log.Warn("failed to cache positions",
			"error", err,
			"cache_key", key,
		)
	}
}

// positionsCacheKey ключ кеша по моменту и месту рождения (имя не влияет на позиции)
func positionsCacheKey(rec domain.BirthRecord) string {
	city := strings.ToLower(strings.ReplaceAll(rec.City, " ", "_"))
	return fmt.Sprintf("natal:positions:%s:%s:%s", rec.BirthDate, rec.BirthTime, city)
}
