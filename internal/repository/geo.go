package repository

import (
	"context"
	"fmt"

	"github.com/schoolhub/portal/internal/domain"
	"github.com/schoolhub/portal/internal/repository/dao"
)

type GeoDAO interface {
	Provinces(ctx context.Context) ([]dao.Province, error)
}

type GeoRepository struct {
	dao GeoDAO
}

func NewGeoRepository(dao GeoDAO) *GeoRepository {
	return &GeoRepository{
		dao: dao,
	}
}

func (r *GeoRepository) Provinces(ctx context.Context) ([]domain.Province, error) {
	found, err := r.dao.Provinces(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Provinces -> %w", err)
	}

	provinces := make([]domain.Province, 0, len(found))
	for _, p := range found {
		provinces = append(provinces, r.provinceDaoToDomain(p))
	}

	return provinces, nil
}

func (r *GeoRepository) provinceDaoToDomain(p dao.Province) domain.Province {
	districts := make([]domain.District, 0, len(p.Amphure))
	for _, a := range p.Amphure {
		subdistricts := make([]domain.Subdistrict, 0, len(a.Tambon))
		for _, t := range a.Tambon {
			subdistricts = append(subdistricts, domain.Subdistrict{
				ID:         t.ID,
				Name:       t.NameTH,
				PostalCode: string(t.ZipCode),
			})
		}
		districts = append(districts, domain.District{
			ID:           a.ID,
			Name:         a.NameTH,
			Subdistricts: subdistricts,
		})
	}

	return domain.Province{
		ID:        p.ID,
		Name:      p.NameTH,
		Districts: districts,
	}
}
