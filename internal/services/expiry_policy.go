package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// NeverExpires is the duration token for keys without an expiry
const NeverExpires = "never"

// ExpiryPolicy is the single source of truth for expiry resolution and
// status derivation. Every listing and validation path calls through it.
type ExpiryPolicy struct{}

// NewExpiryPolicy creates a new expiry policy
func NewExpiryPolicy() *ExpiryPolicy {
	return &ExpiryPolicy{}
}

// Resolve maps a requested duration token to an absolute expiry instant.
// "never", an absent token, unparsable input and non-positive day counts
// all fall back to no expiry; this permissive fallback is deliberate, not
// an error condition.
func (p *ExpiryPolicy) Resolve(durationToken string, now time.Time) *time.Time {
	token := strings.TrimSpace(durationToken)
	if token == "" || token == NeverExpires {
		return nil
	}
	days, err := strconv.Atoi(token)
	if err != nil || days <= 0 {
		return nil
	}
	expiresAt := now.AddDate(0, 0, days)
	return &expiresAt
}

// Status derives active/inactive from an optional expiry. The comparison
// is strict: a key expiring exactly at now is already inactive.
func (p *ExpiryPolicy) Status(expiresAt *time.Time, now time.Time) string {
	if expiresAt == nil || expiresAt.After(now) {
		return domain.StatusActive
	}
	return domain.StatusInactive
}
