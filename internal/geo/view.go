package geo

type Option struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type LevelView struct {
	Options  []Option `json:"options"`
	Selected int      `json:"selected"`
	Disabled bool     `json:"disabled"`
}

// View is what the address form needs to draw the three selects and the
// read-only postal code field.
type View struct {
	State       string    `json:"state"`
	Province    LevelView `json:"province"`
	District    LevelView `json:"district"`
	Subdistrict LevelView `json:"subdistrict"`
	PostalCode  string    `json:"postal_code"`
}

func (s *Selector) View() View {
	v := View{
		State:      s.State().String(),
		PostalCode: s.PostalCode(),
		Province:   LevelView{Options: make([]Option, 0, len(s.provinces))},
		District: LevelView{
			Options:  make([]Option, 0, len(s.Districts())),
			Disabled: s.province == nil,
		},
		Subdistrict: LevelView{
			Options:  make([]Option, 0, len(s.Subdistricts())),
			Disabled: s.district == nil,
		},
	}

	for _, p := range s.provinces {
		v.Province.Options = append(v.Province.Options, Option{ID: p.ID, Name: p.Name})
	}
	for _, d := range s.Districts() {
		v.District.Options = append(v.District.Options, Option{ID: d.ID, Name: d.Name})
	}
	for _, sd := range s.Subdistricts() {
		v.Subdistrict.Options = append(v.Subdistrict.Options, Option{ID: sd.ID, Name: sd.Name})
	}

	if s.province != nil {
		v.Province.Selected = s.province.ID
	}
	if s.district != nil {
		v.District.Selected = s.district.ID
	}
	if s.subdistrict != nil {
		v.Subdistrict.Selected = s.subdistrict.ID
	}

	return v
}

// Replay runs the three transitions in order. Levels whose parent ended up
// unselected are skipped.
func (s *Selector) Replay(provinceID, districtID, subdistrictID int) {
	s.SelectProvince(provinceID)
	if s.SelectDistrict(districtID) != nil {
		return
	}
	_ = s.SelectSubdistrict(subdistrictID)
}
