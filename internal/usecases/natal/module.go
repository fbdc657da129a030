package natal

import (
	"log/slog"

	"github.com/admin/astro-services/natal-api/internal/ports/cache"
	"github.com/admin/astro-services/natal-api/internal/ports/kafka"
	"github.com/admin/astro-services/natal-api/internal/ports/repository"
	"github.com/admin/astro-services/natal-api/internal/ports/service"
)

// Service бизнес-логика расчёта натальных карт
type Service struct {
	UserRepo         repository.IUserRepo
	EphemerisService service.IEphemerisService
	Cache            cache.Cache     // опциональный
	Producer         kafka.IProducer // опциональный
	Log              *slog.Logger
}

// New создаёт новый сервис расчёта натальных карт.
// Cache и Producer могут быть nil - тогда кеширование и публикация событий отключены
func New(
	userRepo repository.IUserRepo,
	ephemerisService service.IEphemerisService,
	cache cache.Cache,
	producer kafka.IProducer,
	log *slog.Logger,
) *Service {
	return &Service{
		UserRepo:         userRepo,
		EphemerisService: ephemerisService,
		Cache:            cache,
		Producer:         producer,
		Log:              log,
	}
}
