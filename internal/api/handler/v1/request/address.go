package request

import (
	"github.com/schoolhub/portal/internal/domain"
	"github.com/schoolhub/portal/internal/service"
)

// AddressRequest is the submitted address form. Formats are checked by the
// service once the required fields and the session are known to be there.
type AddressRequest struct {
	FreeText       string `json:"addr_etc"`
	ProvinceID     int    `json:"province_id" binding:"min=0"`
	DistrictID     int    `json:"district_id" binding:"min=0"`
	SubdistrictID  int    `json:"subdistrict_id" binding:"min=0"`
	HomePhone      string `json:"addr_tel_home"`
	HouseRegNumber string `json:"house_reg_num"`
	Type           string `json:"addr_type"`
}

func (req *AddressRequest) Input() service.AddressInput {
	return service.AddressInput{
		FreeText:       req.FreeText,
		ProvinceID:     req.ProvinceID,
		DistrictID:     req.DistrictID,
		SubdistrictID:  req.SubdistrictID,
		HomePhone:      req.HomePhone,
		HouseRegNumber: req.HouseRegNumber,
		Type:           domain.AddressType(req.Type),
	}
}

// AddressFormQuery carries the current selection of the address form.
// Missing values are placeholders.
type AddressFormQuery struct {
	ProvinceID    int `form:"province" binding:"min=0"`
	DistrictID    int `form:"district" binding:"min=0"`
	SubdistrictID int `form:"subdistrict" binding:"min=0"`
}
