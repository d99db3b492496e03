package order

import (
	"fmt"

	"linenflow/internal/pkg/errs"
)

// Urgency is the delivery priority of an order. It affects only the sort
// order of read projections, never state-machine eligibility or the
// reconciliation engine.
type Urgency int

const (
	// UrgencyUnknown represents an invalid or undefined urgency.
	UrgencyUnknown Urgency = iota

	// UrgencyNormal is the default priority.
	UrgencyNormal

	// UrgencyUrgent sorts the order ahead of normal ones in courier views.
	UrgencyUrgent
)

func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		UrgencyUnknown: "unknown",
		UrgencyNormal:  "normal",
		UrgencyUrgent:  "urgent",
	}
}

// Validate checks if the Urgency value is valid.
// Valid urgencies are UrgencyNormal and UrgencyUrgent.
func (u Urgency) Validate() error {
	if u != UrgencyNormal && u != UrgencyUrgent {
		return errs.NewValueIsInvalidErrorWithCause("urgency is invalid",
			fmt.Errorf("%d is not a valid urgency", u))
	}
	return nil
}

// String returns the human-readable name of the urgency.
// Implements the fmt.Stringer interface.
func (u Urgency) String() string {
	if str, ok := getUrgencyStrings()[u]; ok {
		return str
	}
	return "unknown"
}

// UrgencyFromString maps a wire string to its Urgency.
// Returns an error for unrecognized values.
func UrgencyFromString(s string) (Urgency, error) {
	for urgency, str := range getUrgencyStrings() {
		if str == s && urgency != UrgencyUnknown {
			return urgency, nil
		}
	}
	return UrgencyUnknown, errs.NewValueIsInvalidErrorWithCause("urgency is invalid",
		fmt.Errorf("%q is not a valid urgency", s))
}
