package dto

import "time"

// WizardValueReq carries the value for one wizard step.
type WizardValueReq struct {
	Value string `json:"value" validate:"required"`
}

type WizardResp struct {
	ID   string `json:"id"`
	Step string `json:"step"`

	Kind   *string    `json:"kind"`
	Gender *string    `json:"gender"`
	Age    *string    `json:"age"`
	Date   *time.Time `json:"date"`

	// Summary is the French recap of the fields set so far.
	Summary   []string  `json:"summary"`
	ExpiresAt time.Time `json:"expires_at"`

	// Event is set on the response that completed the wizard.
	Event *EventResp `json:"event,omitempty"`
}
