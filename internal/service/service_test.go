package service

import (
	"context"
	"time"

	"github.com/schoolhub/portal/internal/domain"
)

type fakeUserRepo struct {
	calls int
	res   domain.LoginResult
	err   error
	block chan struct{}
}

func (f *fakeUserRepo) Login(_ context.Context, _, _ string) (domain.LoginResult, error) {
	f.calls++
	if f.block != nil {
		<-f.block
	}
	return f.res, f.err
}

type fakeGeoRepo struct {
	calls     int
	provinces []domain.Province
	err       error
}

func (f *fakeGeoRepo) Provinces(context.Context) ([]domain.Province, error) {
	f.calls++
	return f.provinces, f.err
}

type fakeAddressRepo struct {
	calls int
	token string
	draft domain.AddressDraft
	msg   string
	err   error
}

func (f *fakeAddressRepo) Create(_ context.Context, token string, draft domain.AddressDraft) (string, error) {
	f.calls++
	f.token, f.draft = token, draft
	return f.msg, f.err
}

func testProvinces() []domain.Province {
	return []domain.Province{{
		ID:   1,
		Name: "Province One",
		Districts: []domain.District{{
			ID:           10,
			Name:         "District A",
			Subdistricts: []domain.Subdistrict{{ID: 100, Name: "Sub A", PostalCode: "10100"}},
		}},
	}}
}

func fixedNow(t time.Time) func() {
	prev := timeNow
	timeNow = func() time.Time { return t }
	return func() { timeNow = prev }
}
