package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/visit-service/internal/application/visit"
	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/transport/http/dto"
	"github.com/baechuer/visit-service/internal/transport/http/response"
	"github.com/baechuer/visit-service/internal/transport/http/validate"
)

type Clock interface{ Now() time.Time }

type EventsHandler struct {
	svc   *visit.Service
	clock Clock
}

func NewEventsHandler(svc *visit.Service, clock Clock) *EventsHandler {
	return &EventsHandler{svc: svc, clock: clock}
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	offset, err := intParam(q.Get("offset"), "offset")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	limit, err := intParam(q.Get("limit"), "limit")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = visit.DefaultListCount
	}
	if limit > visit.MaxListCount {
		limit = visit.MaxListCount
	}

	items, total := h.svc.ListEvents(r.Context(), offset, limit)
	response.Data(w, http.StatusOK, dto.PageResp[dto.EventResp]{
		Items:  eventResps(r.Context(), h.svc, items),
		Offset: offset,
		Limit:  limit,
		Total:  total,
	})
}

func (h *EventsHandler) ListRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rg, err := h.svc.ResolveRange(visit.RangeQuery{From: q.Get("from"), To: q.Get("to")})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	items := h.svc.ListEventsInRange(r.Context(), rg)
	response.Data(w, http.StatusOK, dto.RangeResp[dto.EventResp]{
		From:  rg.FromString(),
		To:    rg.ToString(),
		Items: eventResps(r.Context(), h.svc, items),
	})
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ev, err := h.svc.Event(r.Context(), chi.URLParam(r, "event_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, eventResp(r.Context(), h.svc, ev))
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, invalidBody())
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, r, err)
		return
	}

	ev, ok := h.svc.RecordEvent(r.Context(), req.ToCandidate(h.clock.Now()))
	if !ok {
		response.Err(w, r, domain.ErrValidation("incomplete event"))
		return
	}
	response.Data(w, http.StatusCreated, eventResp(r.Context(), h.svc, ev))
}

func (h *EventsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceEventsReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, invalidBody())
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, r, err)
		return
	}

	events := make([]domain.Event, 0, len(req.Events))
	for _, e := range req.Events {
		events = append(events, e.ToDomain())
	}
	h.svc.ReplaceEvents(r.Context(), events)
	response.Data(w, http.StatusOK, map[string]int{"events": len(events)})
}

func eventResp(ctx context.Context, svc *visit.Service, e domain.Event) dto.EventResp {
	c, err := svc.City(ctx, e.CityID)
	if err != nil {
		c = domain.City{}
	}
	return dto.ToEventResp(e, c, svc.Location())
}

func eventResps(ctx context.Context, svc *visit.Service, events []domain.Event) []dto.EventResp {
	out := make([]dto.EventResp, 0, len(events))
	for _, e := range events {
		out = append(out, eventResp(ctx, svc, e))
	}
	return out
}

// intParam parses an optional integer query parameter; empty reads as 0.
func intParam(v, name string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.ErrValidationMeta("invalid query param", map[string]string{
			name: "must be an integer",
		})
	}
	return n, nil
}

func invalidBody() error {
	return domain.ErrValidationMeta("invalid json body", map[string]string{
		"body": "malformed JSON or invalid fields",
	})
}
