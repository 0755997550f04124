package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/visit-service/internal/application/visit"
	"github.com/baechuer/visit-service/internal/domain"
	"github.com/baechuer/visit-service/internal/transport/http/dto"
	"github.com/baechuer/visit-service/internal/transport/http/response"
	"github.com/baechuer/visit-service/internal/transport/http/validate"
	"github.com/baechuer/visit-service/internal/wizard"
)

type WizardHandler struct {
	svc *visit.Service
}

func NewWizardHandler(svc *visit.Service) *WizardHandler {
	return &WizardHandler{svc: svc}
}

func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess := h.svc.StartWizard(r.Context())
	response.Data(w, http.StatusCreated, dto.ToWizardResp(sess, nil, h.svc.Location()))
}

func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Wizard(r.Context(), chi.URLParam(r, "wizard_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToWizardResp(sess, nil, h.svc.Location()))
}

// Set answers the step named in the path with {"value": "..."}.
func (h *WizardHandler) Set(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wizard_id")
	step := wizard.Step(chi.URLParam(r, "step"))

	var req dto.WizardValueReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, invalidBody())
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, r, err)
		return
	}

	var (
		res visit.WizardResult
		err error
	)
	switch step {
	case wizard.StepKind:
		k := domain.Kind(req.Value)
		if !k.Valid() {
			response.Err(w, r, invalidValue(step))
			return
		}
		res, err = h.svc.WizardSetKind(r.Context(), id, k)
	case wizard.StepGender:
		g := domain.Gender(req.Value)
		if !g.Valid() {
			response.Err(w, r, invalidValue(step))
			return
		}
		res, err = h.svc.WizardSetGender(r.Context(), id, g)
	case wizard.StepAge:
		a := domain.AgeBracket(req.Value)
		if !a.Valid() {
			response.Err(w, r, invalidValue(step))
			return
		}
		res, err = h.svc.WizardSetAge(r.Context(), id, a)
	case wizard.StepCity:
		res, err = h.svc.WizardSetCity(r.Context(), id, req.Value)
	default:
		response.Err(w, r, domain.ErrValidationMeta("invalid path param", map[string]string{
			"step": "must be one of: kind, gender, age, city",
		}))
		return
	}
	if err != nil {
		response.Err(w, r, err)
		return
	}

	var ev *dto.EventResp
	if res.Event != nil {
		e := eventResp(r.Context(), h.svc, *res.Event)
		ev = &e
	}
	response.Data(w, http.StatusOK, dto.ToWizardResp(res.Session, ev, h.svc.Location()))
}

// Reset clears the step named in the path and every later one.
func (h *WizardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wizard_id")
	step := wizard.Step(chi.URLParam(r, "step"))

	sess, err := h.svc.WizardReset(r.Context(), id, step)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToWizardResp(sess, nil, h.svc.Location()))
}

func (h *WizardHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.CancelWizard(r.Context(), chi.URLParam(r, "wizard_id")); err != nil {
		response.Err(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func invalidValue(step wizard.Step) error {
	return domain.ErrValidationMeta("invalid value", map[string]string{
		"value": "not a valid " + string(step),
	})
}
