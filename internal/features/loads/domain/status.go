package domain

// Status is a load's position in the dispatch lifecycle.
//
// The zero value means the upstream record carried no status. Values outside the known
// vocabulary are kept verbatim so callers can still display them.
type Status string

const (
	StatusCreated           Status = "created"
	StatusAssigned          Status = "assigned"
	StatusInProgress        Status = "in_progress"
	StatusInTransit         Status = "in_transit"
	StatusEnRoutePickup     Status = "en_route_pickup"
	StatusAtShipper         Status = "at_shipper"
	StatusLeftShipper       Status = "left_shipper"
	StatusEnRouteReceiver   Status = "en_route_receiver"
	StatusAtReceiver        Status = "at_receiver"
	StatusDelivered         Status = "delivered"
	StatusEmpty             Status = "empty"
	StatusAwaitingInvoicing Status = "awaiting_invoicing"
	StatusAwaitingPayment   Status = "awaiting_payment"
	StatusPaid              Status = "paid"
	StatusCompleted         Status = "completed"
)

// UnknownStatusLabel is shown when a load has no status at all.
const UnknownStatusLabel = "Unknown Status"

const unknownStatusIcon = "help-circle"

type statusInfo struct {
	status Status
	label  string
	icon   string
}

// vocabulary lists every known status in lifecycle order.
var vocabulary = []statusInfo{
	{StatusCreated, "Created", "file-plus"},
	{StatusAssigned, "Assigned", "user-check"},
	{StatusInProgress, "In Progress", "play-circle"},
	{StatusInTransit, "In Transit", "truck"},
	{StatusEnRoutePickup, "En Route to Pickup", "navigation"},
	{StatusAtShipper, "At Shipper", "warehouse"},
	{StatusLeftShipper, "Left Shipper", "log-out"},
	{StatusEnRouteReceiver, "En Route to Receiver", "navigation"},
	{StatusAtReceiver, "At Receiver", "map-pin"},
	{StatusDelivered, "Delivered", "package-check"},
	{StatusEmpty, "Empty", "box"},
	{StatusAwaitingInvoicing, "Awaiting Invoicing", "file-text"},
	{StatusAwaitingPayment, "Awaiting Payment", "clock"},
	{StatusPaid, "Paid", "dollar-sign"},
	{StatusCompleted, "Completed", "check-circle"},
}

var vocabularyIndex = func() map[Status]int {
	idx := make(map[Status]int, len(vocabulary))
	for i, info := range vocabulary {
		idx[info.status] = i
	}
	return idx
}()

// ParseStatus converts a raw upstream value into a Status.
// The boolean is false for empty or unrecognized input; the returned Status still carries
// the raw value in that case.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.IsKnown()
}

// IsKnown reports whether s belongs to the lifecycle vocabulary.
func (s Status) IsKnown() bool {
	_, ok := vocabularyIndex[s]
	return ok
}

// IsZero reports whether the status is absent.
func (s Status) IsZero() bool {
	return s == ""
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// AllStatuses returns the vocabulary in lifecycle order.
func AllStatuses() []Status {
	out := make([]Status, len(vocabulary))
	for i, info := range vocabulary {
		out[i] = info.status
	}
	return out
}

// Label returns the display label for s.
// Absent statuses read "Unknown Status"; unrecognized ones echo the raw value.
func Label(s Status) string {
	if s.IsZero() {
		return UnknownStatusLabel
	}
	if i, ok := vocabularyIndex[s]; ok {
		return vocabulary[i].label
	}
	return string(s)
}

// Icon returns the iconography key for s.
func Icon(s Status) string {
	if i, ok := vocabularyIndex[s]; ok {
		return vocabulary[i].icon
	}
	return unknownStatusIcon
}
