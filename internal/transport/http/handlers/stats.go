package handlers

import (
	"net/http"

	"github.com/baechuer/visit-service/internal/application/visit"
	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/stats"
	"github.com/baechuer/visit-service/internal/transport/http/dto"
	"github.com/baechuer/visit-service/internal/transport/http/response"
)

const maxTopLimit = 100

type StatsHandler struct {
	svc *visit.Service
}

func NewStatsHandler(svc *visit.Service) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// rangeFrom reads either from&to or period with year, month, days and anchor.
func (h *StatsHandler) rangeFrom(r *http.Request) (stats.Range, error) {
	q := r.URL.Query()
	rq := visit.RangeQuery{
		From:   q.Get("from"),
		To:     q.Get("to"),
		Period: q.Get("period"),
		Anchor: q.Get("anchor"),
	}
	var err error
	if rq.Year, err = intParam(q.Get("year"), "year"); err != nil {
		return stats.Range{}, err
	}
	if rq.Month, err = intParam(q.Get("month"), "month"); err != nil {
		return stats.Range{}, err
	}
	if rq.Days, err = intParam(q.Get("days"), "days"); err != nil {
		return stats.Range{}, err
	}
	return h.svc.ResolveRange(rq)
}

func limitFrom(r *http.Request) (int, error) {
	limit, err := intParam(r.URL.Query().Get("limit"), "limit")
	if err != nil {
		return 0, err
	}
	if limit < 0 || limit > maxTopLimit {
		return 0, domain.ErrValidationMeta("invalid query param", map[string]string{
			"limit": "must be between 0 and 100",
		})
	}
	return limit, nil
}

func (h *StatsHandler) PerDay(w http.ResponseWriter, r *http.Request) {
	rg, err := h.rangeFrom(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToPerDayResp(rg, h.svc.CountPerDay(r.Context(), rg)))
}

func (h *StatsHandler) Kind(w http.ResponseWriter, r *http.Request) {
	rg, err := h.rangeFrom(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	counts := h.svc.CountByKind(r.Context(), rg)
	response.Data(w, http.StatusOK, dto.ToCountResp(counts, domain.Kind.Label).InRange(rg))
}

func (h *StatsHandler) Gender(w http.ResponseWriter, r *http.Request) {
	rg, err := h.rangeFrom(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	counts := h.svc.CountByGender(r.Context(), rg)
	response.Data(w, http.StatusOK, dto.ToCountResp(counts, domain.Gender.Label).InRange(rg))
}

func (h *StatsHandler) Age(w http.ResponseWriter, r *http.Request) {
	rg, err := h.rangeFrom(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	counts := h.svc.CountByAge(r.Context(), rg)
	response.Data(w, http.StatusOK, dto.ToCountResp(counts, domain.AgeBracket.Label).InRange(rg))
}

func (h *StatsHandler) PostCode(w http.ResponseWriter, r *http.Request) {
	rg, err := h.rangeFrom(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	counts := h.svc.CountByPostCode(r.Context(), rg)
	response.Data(w, http.StatusOK, dto.ToCountResp(counts, nil).InRange(rg))
}

func (h *StatsHandler) TopCities(w http.ResponseWriter, r *http.Request) {
	rg, err := h.rangeFrom(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	limit, err := limitFrom(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	if limit == 0 {
		limit = stats.DefaultTopLimit
	}
	top := h.svc.TopCities(r.Context(), rg, limit)
	total := len(h.svc.ListEventsInRange(r.Context(), rg))
	response.Data(w, http.StatusOK, dto.TopCitiesResp{
		From:   rg.FromString(),
		To:     rg.ToString(),
		Limit:  limit,
		Cities: dto.ToTopCityResps(top, total),
	})
}

func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rg, err := h.rangeFrom(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	limit, err := limitFrom(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	d, err := h.svc.Dashboard(r.Context(), rg, limit)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToDashboardResp(d))
}
