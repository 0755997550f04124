package visit

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/visit-service/internal/domain"
)

func (s *Service) ReplaceCities(ctx context.Context, cities []domain.City) error {
	if err := s.cities.ReplaceAll(cities); err != nil {
		return err
	}
	zlog.Info().Int("cities", len(cities)).Msg("cities replaced")
	return nil
}

func (s *Service) Cities(ctx context.Context) []domain.City {
	return s.cities.ListAll()
}

func (s *Service) City(ctx context.Context, id string) (domain.City, error) {
	c, ok := s.cities.ByID(id)
	if !ok {
		return domain.City{}, domain.ErrNotFound("city not found")
	}
	return c, nil
}

// CityName resolves id for display; unknown ids read as "?".
func (s *Service) CityName(id string) string {
	if c, ok := s.cities.ByID(id); ok {
		return c.Name
	}
	return domain.UnknownCityName
}

func (s *Service) PostCodes(ctx context.Context) []string {
	return s.cities.ListDistinctPostCodes()
}

func (s *Service) CitiesByPostCode(ctx context.Context, code string) []domain.City {
	return s.cities.ListByPostCode(code)
}
