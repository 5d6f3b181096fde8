package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type Province struct {
	ID      int       `json:"id"`
	NameTH  string    `json:"name_th"`
	Amphure []Amphure `json:"amphure"`
}

type Amphure struct {
	ID     int      `json:"id"`
	NameTH string   `json:"name_th"`
	Tambon []Tambon `json:"tambon"`
}

type Tambon struct {
	ID      int    `json:"id"`
	NameTH  string `json:"name_th"`
	ZipCode Text   `json:"zip_code"`
}

type GeoDAO struct {
	client *Client
}

func NewGeoDAO(client *Client) *GeoDAO {
	return &GeoDAO{
		client: client,
	}
}

// Provinces fetches the whole tree in one call; districts and subdistricts
// are embedded in their parents.
func (d *GeoDAO) Provinces(ctx context.Context) ([]Province, error) {
	env, err := d.client.do(ctx, http.MethodGet, "/provinces", "", nil)
	if err != nil {
		return nil, err
	}

	var provinces []Province
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err = json.Unmarshal(env.Data, &provinces); err != nil {
			return nil, fmt.Errorf("json.Unmarshal provinces -> %w: %w", ErrMalformed, err)
		}
	}
	if provinces == nil {
		return nil, ErrNoData
	}

	return provinces, nil
}
