package domain

import (
	"errors"
	"time"
)

var (
	// ErrLoadNotFound is returned when the load API has no record for the id.
	ErrLoadNotFound = errors.New("load not found")
	// ErrNoNextAction is returned when the view offers no guided step from the current status.
	ErrNoNextAction = errors.New("no next action for status")
	// ErrNoNextStage is returned when force-advance has nowhere left to go.
	ErrNoNextStage = errors.New("no next stage")
	// ErrConfirmationRequired is returned when force-advance is attempted without confirmation.
	ErrConfirmationRequired = errors.New("force advance requires confirmation")
)

// Load is a single freight shipment as stored by the load API.
type Load struct {
	// ID is the load's identifier in the load API.
	ID string `json:"id"`
	// Status is the current lifecycle status. May be empty or unrecognized.
	Status Status `json:"status"`
	// BOLNumber is the bill of lading number.
	BOLNumber string `json:"bolNumber,omitempty"`
	// PODDocumentPath points to the uploaded proof of delivery, if any.
	PODDocumentPath string `json:"podDocumentPath,omitempty"`
	// DriverID is the assigned driver, if any.
	DriverID string `json:"driverId,omitempty"`
	// UpdatedAt is the last modification time reported upstream.
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// StatusView is everything a UI needs to render a load's status.
type StatusView struct {
	LoadID     string  `json:"load_id,omitempty"`
	Status     Status  `json:"status"`
	Label      string  `json:"label"`
	Icon       string  `json:"icon"`
	Known      bool    `json:"known"`
	View       View    `json:"view"`
	NextAction *Action `json:"next_action"`
	Steps      []Step  `json:"steps"`
}

// Describe derives the status view of s for the given view.
func Describe(view View, s Status) StatusView {
	sv := StatusView{
		Status: s,
		Label:  Label(s),
		Icon:   Icon(s),
		Known:  s.IsKnown(),
		View:   view,
		Steps:  Progress(s),
	}
	if action, ok := NextAction(view, s); ok {
		sv.NextAction = &action
	}
	return sv
}
