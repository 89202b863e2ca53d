package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Resource is a metered service whose usage counts against a tier allowance.
type Resource string

const (
	ResourceHereMaps   Resource = "here_maps"
	ResourceDocumentAI Resource = "document_ai"
	ResourceSMS        Resource = "sms"
	ResourceEmail      Resource = "email"
	ResourceElevenLabs Resource = "elevenlabs"
	ResourceStorageGB  Resource = "storage_gb"
)

var (
	// ErrUnknownResource is returned for resource names outside the metered set.
	ErrUnknownResource = errors.New("unknown resource")
	// ErrInvalidQuantity is returned when a usage event carries a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidPeriod is returned for billing periods not in YYYY-MM form.
	ErrInvalidPeriod = errors.New("invalid billing period")
	// ErrUnknownTier is returned when a tier name is not in the catalog.
	ErrUnknownTier = errors.New("unknown tier")
	// ErrInvalidAccount is returned for empty account ids or ids containing ':'.
	ErrInvalidAccount = errors.New("invalid account id")
	// ErrDuplicateEvent is returned when an event id was already recorded for the account.
	ErrDuplicateEvent = errors.New("usage event already recorded")
)

var resources = []Resource{
	ResourceHereMaps,
	ResourceDocumentAI,
	ResourceSMS,
	ResourceEmail,
	ResourceElevenLabs,
	ResourceStorageGB,
}

// AllResources returns the metered resources in billing display order.
func AllResources() []Resource {
	out := make([]Resource, len(resources))
	copy(out, resources)
	return out
}

// ValidateAccount checks an account id. Ids are used as storage key segments,
// so they must be non-blank and free of ':'.
func ValidateAccount(account string) error {
	if strings.TrimSpace(account) == "" || strings.Contains(account, ":") {
		return fmt.Errorf("%w: %q", ErrInvalidAccount, account)
	}
	return nil
}

// ParseResource validates a resource name.
func ParseResource(raw string) (Resource, error) {
	for _, r := range resources {
		if string(r) == raw {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResource, raw)
}

// Counters is a snapshot of accumulated usage for one billing period.
// Missing and negative entries read as zero.
type Counters map[Resource]decimal.Decimal

// Get returns the usage of r, clamped at zero.
func (c Counters) Get(r Resource) decimal.Decimal {
	v, ok := c[r]
	if !ok || v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// Period identifies a calendar-month billing period.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the billing period containing t, in UTC.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses YYYY-MM.
func ParsePeriod(raw string) (Period, error) {
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, raw)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// String formats the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start returns the first instant of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following period.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(b []byte) error {
	parsed, err := ParsePeriod(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
