package dao

import (
	"context"
	"net/http"
)

// Address is the flat payload of POST /address. Optional fields are sent
// as explicit nulls.
type Address struct {
	Etc            string  `json:"addr_etc"`
	SubDistrict    string  `json:"addr_sub_dist"`
	District       string  `json:"addr_dist"`
	Province       string  `json:"addr_prv"`
	PostalCode     string  `json:"addr_pos_code"`
	HomePhone      *string `json:"addr_tel_home"`
	HouseRegNumber *string `json:"house_reg_num"`
	Type           string  `json:"addr_type"`
}

type AddressDAO struct {
	client *Client
}

func NewAddressDAO(client *Client) *AddressDAO {
	return &AddressDAO{
		client: client,
	}
}

func (d *AddressDAO) Insert(ctx context.Context, token string, addr Address) (string, error) {
	env, err := d.client.do(ctx, http.MethodPost, "/address", token, addr)
	if err != nil {
		return "", err
	}

	return env.Message, nil
}
