package domain

type AddressType string

const (
	AddressCurrent   AddressType = "current"
	AddressPermanent AddressType = "permanent"
)

// AddressDraft is the address form state. Location names and the postal
// code are filled from the geographic selection only.
type AddressDraft struct {
	FreeText       string      `json:"free_text"`
	Subdistrict    string      `json:"subdistrict"`
	District       string      `json:"district"`
	Province       string      `json:"province"`
	PostalCode     string      `json:"postal_code"`
	HomePhone      string      `json:"home_phone,omitempty"`
	HouseRegNumber string      `json:"house_reg_num,omitempty"`
	Type           AddressType `json:"type"`
}

// NewAddressDraft returns a draft with default values.
func NewAddressDraft() AddressDraft {
	return AddressDraft{Type: AddressCurrent}
}
