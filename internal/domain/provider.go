package domain

import "time"

type District string

// Districts a service provider can be located in. Used to filter providers
// by locality.
const (
	DistrictKadikoy  District = "Kadikoy"
	DistrictBesiktas District = "Besiktas"
	DistrictSisli    District = "Sisli"
	DistrictUskudar  District = "Uskudar"
	DistrictFatih    District = "Fatih"
	DistrictBakirkoy District = "Bakirkoy"
	DistrictMaltepe  District = "Maltepe"
	DistrictAtasehir District = "Atasehir"
	DistrictKartal   District = "Kartal"
	DistrictBeyoglu  District = "Beyoglu"
)

var Districts = []District{
	DistrictKadikoy,
	DistrictBesiktas,
	DistrictSisli,
	DistrictUskudar,
	DistrictFatih,
	DistrictBakirkoy,
	DistrictMaltepe,
	DistrictAtasehir,
	DistrictKartal,
	DistrictBeyoglu,
}

func (d District) Valid() bool {
	for _, known := range Districts {
		if d == known {
			return true
		}
	}
	return false
}

// ServiceProvider is a repair shop users can rate. AverageRating is the
// persisted integer rollup recomputed on every new review; analytics derive a
// more precise 1-decimal mean on demand.
type ServiceProvider struct {
	ID       string   `json:"id" gorm:"primaryKey;size:36"`
	Name     string   `json:"name" gorm:"size:180;not null"`
	Email    string   `json:"email" gorm:"not null"`
	Phone    string   `json:"phone,omitempty" gorm:"size:30"`
	Website  string   `json:"website,omitempty"`
	Address  string   `json:"address" gorm:"size:255"`
	City     string   `json:"city" gorm:"size:100"`
	District District `json:"district" gorm:"size:40;index"`

	SupportedBrandIDs []string `json:"supported_brand_ids,omitempty" gorm:"serializer:json"`

	AverageRating int `json:"average_rating" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ServiceProvider) TableName() string {
	return "service_providers"
}

// SupportsBrand reports whether the provider services the given brand. An
// empty supported set means the provider takes any brand.
func (p *ServiceProvider) SupportsBrand(brandID string) bool {
	if len(p.SupportedBrandIDs) == 0 {
		return true
	}
	for _, id := range p.SupportedBrandIDs {
		if id == brandID {
			return true
		}
	}
	return false
}
