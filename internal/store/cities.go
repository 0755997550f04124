package store

import (
	"sort"
	"sync"

	"github.com/baechuer/visit-service/internal/domain"
)

// CityDirectory is the reference list of cities, kept in load order.
type CityDirectory struct {
	mu      sync.RWMutex
	cities  []domain.City
	byID    map[string]int
	version uint64
}

func NewCityDirectory() *CityDirectory {
	return &CityDirectory{byID: map[string]int{}}
}

// ReplaceAll loads a new dataset. At most one city may lack a postcode and
// every postcode must be five digits; ids must be unique.
func (d *CityDirectory) ReplaceAll(cities []domain.City) error {
	next := make([]domain.City, 0, len(cities))
	byID := make(map[string]int, len(cities))
	withoutPostCode := 0
	for _, c := range cities {
		c = domain.NormalizeCity(c)
		if c.ID == "" {
			return domain.ErrValidationMeta("invalid city", map[string]string{"id": "required"})
		}
		if _, dup := byID[c.ID]; dup {
			return domain.ErrValidationMeta("invalid city", map[string]string{"id": "duplicate " + c.ID})
		}
		if !c.HasPostCode() {
			withoutPostCode++
			if withoutPostCode > 1 {
				return domain.ErrValidationMeta("invalid city", map[string]string{
					"post_code": "only one city may omit its postcode",
				})
			}
		} else if !domain.ValidPostCode(c.PostCode) {
			return domain.ErrValidationMeta("invalid city", map[string]string{
				"post_code": "must be 5 digits: " + c.PostCode,
			})
		}
		byID[c.ID] = len(next)
		next = append(next, c)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.cities = next
	d.byID = byID
	d.version++
	return nil
}

func (d *CityDirectory) ListAll() []domain.City {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.City, len(d.cities))
	copy(out, d.cities)
	return out
}

// ByID reports false for unknown ids.
func (d *CityDirectory) ByID(id string) (domain.City, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i, ok := d.byID[id]
	if !ok {
		return domain.City{}, false
	}
	return d.cities[i], true
}

// ListDistinctPostCodes returns every postcode once, ascending.
func (d *CityDirectory) ListDistinctPostCodes() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, c := range d.cities {
		if !c.HasPostCode() {
			continue
		}
		if _, ok := seen[c.PostCode]; ok {
			continue
		}
		seen[c.PostCode] = struct{}{}
		out = append(out, c.PostCode)
	}
	sort.Strings(out)
	return out
}

// ListByPostCode returns the cities sharing code, in directory order.
func (d *CityDirectory) ListByPostCode(code string) []domain.City {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.City, 0)
	if code == "" {
		return out
	}
	for _, c := range d.cities {
		if c.PostCode == code {
			out = append(out, c)
		}
	}
	return out
}

func (d *CityDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.cities)
}

func (d *CityDirectory) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}
