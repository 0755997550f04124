package visit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/baechuer/visit-service/internal/stats"
)

// cacheKeyStats changes whenever either store is written, so stale entries
// are never read back; they simply expire.
func (s *Service) cacheKeyStats(name string, r stats.Range, limit int) string {
	raw := fmt.Sprintf("stat=%s|from=%s|to=%s|tz=%s|limit=%d|inst=%s|ev=%d|cv=%d",
		name, r.FromString(), r.ToString(), r.Location().String(), limit,
		s.instance, s.events.Version(), s.cities.Version())

	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("visits:stats:%s:%s", name, hex.EncodeToString(hash[:]))
}
