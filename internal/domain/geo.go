package domain

type Province struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Districts []District `json:"districts"`
}

type District struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Subdistricts []Subdistrict `json:"subdistricts"`
}

type Subdistrict struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PostalCode string `json:"postal_code"`
}
