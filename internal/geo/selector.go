// Package geo implements the cascading province, district and subdistrict
// selection of the address form.
package geo

import (
	"errors"

	"github.com/schoolhub/portal/internal/domain"
)

// Placeholder is the id of the empty "please choose" option.
const Placeholder = 0

var ErrParentNotSelected = errors.New("parent level is not selected")

type State int

const (
	NoProvince State = iota
	ProvinceSelected
	DistrictSelected
	FullySelected
)

func (s State) String() string {
	switch s {
	case NoProvince:
		return "no_province"
	case ProvinceSelected:
		return "province_selected"
	case DistrictSelected:
		return "district_selected"
	case FullySelected:
		return "fully_selected"
	default:
		return "unknown"
	}
}

// Selector holds the province tree for the lifetime of one form and the
// current selection. Option lists are always the children of the selected
// parent and the postal code is set only while a subdistrict is selected.
type Selector struct {
	provinces []domain.Province

	province    *domain.Province
	district    *domain.District
	subdistrict *domain.Subdistrict
}

func NewSelector(provinces []domain.Province) *Selector {
	return &Selector{provinces: provinces}
}

func (s *Selector) State() State {
	switch {
	case s.subdistrict != nil:
		return FullySelected
	case s.district != nil:
		return DistrictSelected
	case s.province != nil:
		return ProvinceSelected
	default:
		return NoProvince
	}
}

// SelectProvince selects a province and clears everything below it. The
// placeholder id, or an id that is not in the tree, resets the form.
func (s *Selector) SelectProvince(id int) {
	s.province, s.district, s.subdistrict = findProvince(s.provinces, id), nil, nil
}

// SelectDistrict selects a district of the current province and clears the
// subdistrict. The placeholder id clears the district.
func (s *Selector) SelectDistrict(id int) error {
	if s.province == nil {
		return ErrParentNotSelected
	}
	s.district, s.subdistrict = findDistrict(s.province.Districts, id), nil

	return nil
}

// SelectSubdistrict selects a subdistrict of the current district, which
// also sets the postal code. The placeholder id clears it.
func (s *Selector) SelectSubdistrict(id int) error {
	if s.district == nil {
		return ErrParentNotSelected
	}
	s.subdistrict = findSubdistrict(s.district.Subdistricts, id)

	return nil
}

// Reset returns to the initial state, keeping the loaded tree.
func (s *Selector) Reset() {
	s.province, s.district, s.subdistrict = nil, nil, nil
}

func (s *Selector) Provinces() []domain.Province {
	return s.provinces
}

func (s *Selector) Districts() []domain.District {
	if s.province == nil {
		return nil
	}

	return s.province.Districts
}

func (s *Selector) Subdistricts() []domain.Subdistrict {
	if s.district == nil {
		return nil
	}

	return s.district.Subdistricts
}

func (s *Selector) PostalCode() string {
	if s.subdistrict == nil {
		return ""
	}

	return s.subdistrict.PostalCode
}

// Apply copies the selected names and the postal code into the draft.
func (s *Selector) Apply(draft domain.AddressDraft) domain.AddressDraft {
	draft.Province, draft.District, draft.Subdistrict = "", "", ""
	if s.province != nil {
		draft.Province = s.province.Name
	}
	if s.district != nil {
		draft.District = s.district.Name
	}
	if s.subdistrict != nil {
		draft.Subdistrict = s.subdistrict.Name
	}
	draft.PostalCode = s.PostalCode()

	return draft
}

func findProvince(provinces []domain.Province, id int) *domain.Province {
	if id == Placeholder {
		return nil
	}
	for i := range provinces {
		if provinces[i].ID == id {
			return &provinces[i]
		}
	}

	return nil
}

func findDistrict(districts []domain.District, id int) *domain.District {
	if id == Placeholder {
		return nil
	}
	for i := range districts {
		if districts[i].ID == id {
			return &districts[i]
		}
	}

	return nil
}

func findSubdistrict(subdistricts []domain.Subdistrict, id int) *domain.Subdistrict {
	if id == Placeholder {
		return nil
	}
	for i := range subdistricts {
		if subdistricts[i].ID == id {
			return &subdistricts[i]
		}
	}

	return nil
}
