package seed

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/baechuer/visit-service/internal/domain"
)

// OtherCityName is the catch-all city without a postcode.
const OtherCityName = "Autre"

var demoCities = []domain.City{
	{PostCode: "12130", Name: "La Capelle Bonance"},
	{PostCode: "12130", Name: "Pierrefiche"},
	{PostCode: "12140", Name: "Campouriez"},
	{PostCode: "12140", Name: "Entraygues Sur Truyere"},
	{PostCode: "12140", Name: "Florentin La Capelle"},
	{PostCode: "12140", Name: "Le Fel"},
	{PostCode: "12140", Name: "St Hippolyte"},
	{PostCode: "12150", Name: "Severac d'Aveyron - Recoules Previnquieres"},
	{PostCode: "12150", Name: "Severac d'Aveyron - Lapanouse"},
	{PostCode: "12150", Name: "Severac d'Aveyron - Buzeins"},
	{Name: OtherCityName},
}

// DemoCities returns the Aveyron demo directory with ids read from r.
// A nil r uses crypto randomness.
func DemoCities(r io.Reader) []domain.City {
	out := make([]domain.City, len(demoCities))
	for i, c := range demoCities {
		c.ID = newID(r)
		out[i] = c
	}
	return out
}

func newID(r io.Reader) string {
	if r == nil {
		return uuid.NewString()
	}
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// DemoCitySource serves DemoCities as a CitySource.
type DemoCitySource struct {
	Rand io.Reader
}

func (s DemoCitySource) ListCities(ctx context.Context) ([]domain.City, error) {
	return DemoCities(s.Rand), nil
}
