package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/schoolhub/portal/internal/cache"
	"github.com/schoolhub/portal/internal/domain"
	"github.com/schoolhub/portal/internal/geo"
	"github.com/schoolhub/portal/internal/repository"
)

// timeNow is replaced in tests.
var timeNow = time.Now

type GeoRepository interface {
	Provinces(ctx context.Context) ([]domain.Province, error)
}

type GeoService struct {
	repo  GeoRepository
	cache cache.ProvinceCache
}

func NewGeoService(repo GeoRepository, cache cache.ProvinceCache) *GeoService {
	return &GeoService{
		repo:  repo,
		cache: cache,
	}
}

// Provinces returns the province tree, loading it from the school API on a
// cache miss. Cache failures are logged and otherwise ignored.
func (s *GeoService) Provinces(ctx context.Context) ([]domain.Province, error) {
	provinces, ok, err := s.cache.Get(ctx)
	if err != nil {
		zap.L().Warn("province cache read failed", zap.Error(err))
	}
	if ok {
		return provinces, nil
	}

	provinces, err = s.repo.Provinces(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoData) {
			return nil, ErrProvincesNotFound
		}
		return nil, fmt.Errorf("s.repo.Provinces -> %w", err)
	}

	if err = s.cache.Set(ctx, provinces); err != nil {
		zap.L().Warn("province cache write failed", zap.Error(err))
	}

	return provinces, nil
}

// Selector returns a fresh selector over the province tree.
func (s *GeoService) Selector(ctx context.Context) (*geo.Selector, error) {
	provinces, err := s.Provinces(ctx)
	if err != nil {
		return nil, err
	}

	return geo.NewSelector(provinces), nil
}

// Form replays the given selections and returns the resulting form view.
// Zero ids are placeholders.
func (s *GeoService) Form(ctx context.Context, provinceID, districtID, subdistrictID int) (geo.View, error) {
	selector, err := s.Selector(ctx)
	if err != nil {
		return geo.View{}, err
	}
	selector.Replay(provinceID, districtID, subdistrictID)

	return selector.View(), nil
}
