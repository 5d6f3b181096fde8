package repository

import (
	"context"
	"fmt"

	"github.com/schoolhub/portal/internal/domain"
	"github.com/schoolhub/portal/internal/repository/dao"
)

type AddressDAO interface {
	Insert(ctx context.Context, token string, addr dao.Address) (string, error)
}

type AddressRepository struct {
	dao AddressDAO
}

func NewAddressRepository(dao AddressDAO) *AddressRepository {
	return &AddressRepository{
		dao: dao,
	}
}

func (r *AddressRepository) Create(ctx context.Context, token string, draft domain.AddressDraft) (string, error) {
	msg, err := r.dao.Insert(ctx, token, r.domainToDao(draft))
	if err != nil {
		return "", fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return msg, nil
}

func (r *AddressRepository) domainToDao(d domain.AddressDraft) dao.Address {
	return dao.Address{
		Etc:            d.FreeText,
		SubDistrict:    d.Subdistrict,
		District:       d.District,
		Province:       d.Province,
		PostalCode:     d.PostalCode,
		HomePhone:      nullIfBlank(d.HomePhone),
		HouseRegNumber: nullIfBlank(d.HouseRegNumber),
		Type:           string(d.Type),
	}
}

func nullIfBlank(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
