package domain

// Step is one segment of the load progress bar.
type Step struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Active    bool   `json:"active"`
}

var progressSteps = []struct {
	key   string
	label string
}{
	{"assigned", "Assigned"},
	{"in_progress", "In Progress"},
	{"at_shipper", "At Shipper"},
	{"left_shipper", "Left Shipper"},
	{"at_receiver", "At Receiver"},
	{"delivered", "Delivered"},
	{"invoiced", "Invoiced"},
}

// progressOrder places every status the bar accepts onto a displayed step, in lifecycle
// order. Several statuses share a step. created is absent: a load without a driver has
// no progress.
var progressOrder = []struct {
	status Status
	step   int
}{
	{StatusAssigned, 0},
	{StatusInProgress, 1},
	{StatusInTransit, 1},
	{StatusEnRoutePickup, 1},
	{StatusAtShipper, 2},
	{StatusLeftShipper, 3},
	{StatusEnRouteReceiver, 3},
	{StatusAtReceiver, 4},
	{StatusDelivered, 5},
	{StatusEmpty, 5},
	{StatusAwaitingInvoicing, 5},
	{StatusAwaitingPayment, 6},
	{StatusPaid, 6},
	{StatusCompleted, 6},
}

// ProgressIndex returns the displayed step for s, or -1 when s is not on the bar.
// An absent status counts as assigned.
func ProgressIndex(s Status) int {
	if s.IsZero() {
		s = StatusAssigned
	}
	for _, o := range progressOrder {
		if o.status == s {
			return o.step
		}
	}
	return -1
}

// ProgressOrder returns the statuses the progress bar accepts, in lifecycle order.
func ProgressOrder() []Status {
	out := make([]Status, len(progressOrder))
	for i, o := range progressOrder {
		out[i] = o.status
	}
	return out
}

// Progress projects s onto the progress bar. Steps up to and including the current one
// are completed; the current one is active.
func Progress(s Status) []Step {
	current := ProgressIndex(s)

	steps := make([]Step, len(progressSteps))
	for i, ps := range progressSteps {
		steps[i] = Step{
			Key:       ps.key,
			Label:     ps.label,
			Completed: i <= current,
			Active:    i == current,
		}
	}
	return steps
}
