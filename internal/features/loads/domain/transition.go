package domain

import (
	"errors"
	"strings"
)

// View identifies which surface is asking for the next action. Dispatchers and drivers
// walk the lifecycle through different intermediate statuses, so each has its own table.
type View string

const (
	// ViewDispatcher is the dispatcher's load card.
	ViewDispatcher View = "dispatcher"
	// ViewDriver is the driver's mobile load list.
	ViewDriver View = "driver"
)

// ErrUnknownView is returned by ParseView for anything other than dispatcher or driver.
var ErrUnknownView = errors.New("unknown view")

// ParseView maps a query value to a View. Empty input selects the dispatcher view.
func ParseView(raw string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ViewDispatcher:
		return ViewDispatcher, nil
	case ViewDriver:
		return ViewDriver, nil
	default:
		return "", ErrUnknownView
	}
}

// Action is a single permitted forward step and how to present it.
type Action struct {
	// Target is the status the load moves to.
	Target Status `json:"target"`
	// Label is the button caption.
	Label string `json:"label"`
	// Icon is the button iconography key.
	Icon string `json:"icon"`
}

var dispatcherTransitions = map[Status]Action{
	StatusCreated:         {StatusAssigned, "Assign Driver", "user-plus"},
	StatusAssigned:        {StatusInProgress, "Start Load", "play"},
	StatusInProgress:      {StatusAtShipper, "At Shipper", "warehouse"},
	StatusInTransit:       {StatusAtShipper, "At Shipper", "warehouse"},
	StatusEnRoutePickup:   {StatusAtShipper, "At Shipper", "warehouse"},
	StatusAtShipper:       {StatusLeftShipper, "Left Shipper", "log-out"},
	StatusLeftShipper:     {StatusAtReceiver, "At Receiver", "map-pin"},
	StatusEnRouteReceiver: {StatusAtReceiver, "At Receiver", "map-pin"},
	StatusAtReceiver:      {StatusDelivered, "Mark Delivered", "package-check"},
	StatusDelivered:       {StatusAwaitingInvoicing, "Ready to Invoice", "file-text"},
}

var driverTransitions = map[Status]Action{
	StatusCreated:         {StatusEnRoutePickup, "Start Trip to Pickup", "navigation"},
	StatusAssigned:        {StatusEnRoutePickup, "Start Trip to Pickup", "navigation"},
	StatusInProgress:      {StatusEnRoutePickup, "Start Trip to Pickup", "navigation"},
	StatusInTransit:       {StatusEnRouteReceiver, "Heading to Receiver", "navigation"},
	StatusEnRoutePickup:   {StatusAtShipper, "Arrived at Shipper", "warehouse"},
	StatusAtShipper:       {StatusLeftShipper, "Left Shipper", "log-out"},
	StatusLeftShipper:     {StatusEnRouteReceiver, "Heading to Receiver", "navigation"},
	StatusEnRouteReceiver: {StatusAtReceiver, "Arrived at Receiver", "map-pin"},
	StatusAtReceiver:      {StatusDelivered, "Mark Delivered", "package-check"},
	StatusDelivered:       {StatusEmpty, "Mark Empty", "box"},
}

func transitionsFor(view View) map[Status]Action {
	switch view {
	case ViewDispatcher:
		return dispatcherTransitions
	case ViewDriver:
		return driverTransitions
	default:
		return nil
	}
}

// NextAction returns the guided forward step for status in the given view.
// It reports false when the status is terminal for that view, unrecognized, or the view is unknown.
func NextAction(view View, status Status) (Action, bool) {
	action, ok := transitionsFor(view)[status]
	return action, ok
}

// forceProgression is the administrative override path. It skips the en-route statuses
// on purpose and must not be reconciled with the guided tables.
var forceProgression = []Status{
	StatusCreated,
	StatusAssigned,
	StatusInProgress,
	StatusAtShipper,
	StatusLeftShipper,
	StatusAtReceiver,
	StatusDelivered,
	StatusAwaitingInvoicing,
	StatusAwaitingPayment,
	StatusPaid,
	StatusCompleted,
}

// ForceNext returns the status after s on the override path.
// It reports false for completed and for any status not on that path.
func ForceNext(s Status) (Status, bool) {
	for i, st := range forceProgression {
		if st == s && i+1 < len(forceProgression) {
			return forceProgression[i+1], true
		}
	}
	return "", false
}
