package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/visit-service/internal/application/visit"
	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/transport/http/dto"
	"github.com/baechuer/visit-service/internal/transport/http/response"
	"github.com/baechuer/visit-service/internal/transport/http/validate"
)

type CitiesHandler struct {
	svc *visit.Service
}

func NewCitiesHandler(svc *visit.Service) *CitiesHandler {
	return &CitiesHandler{svc: svc}
}

func (h *CitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	response.Data(w, http.StatusOK, dto.ToCityResps(h.svc.Cities(r.Context())))
}

func (h *CitiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.City(r.Context(), chi.URLParam(r, "city_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToCityResp(c))
}

func (h *CitiesHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceCitiesReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, invalidBody())
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, r, err)
		return
	}

	cities := make([]domain.City, 0, len(req.Cities))
	for _, c := range req.Cities {
		cities = append(cities, c.ToDomain())
	}
	if err := h.svc.ReplaceCities(r.Context(), cities); err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToCityResps(h.svc.Cities(r.Context())))
}

func (h *CitiesHandler) PostCodes(w http.ResponseWriter, r *http.Request) {
	response.Data(w, http.StatusOK, dto.PostCodesResp{PostCodes: h.svc.PostCodes(r.Context())})
}

func (h *CitiesHandler) ByPostCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "post_code")
	if !domain.ValidPostCode(code) {
		response.Err(w, r, domain.ErrValidationMeta("invalid path param", map[string]string{
			"post_code": "must be 5 digits",
		}))
		return
	}
	response.Data(w, http.StatusOK, dto.ToCityResps(h.svc.CitiesByPostCode(r.Context(), code)))
}
