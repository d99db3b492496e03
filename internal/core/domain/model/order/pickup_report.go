package order

import (
	"errors"
	"fmt"

	"linenflow/internal/pkg/errs"
	"linenflow/internal/pkg/guard"
)

// ErrPickupReportIsNotConstructed is returned when a PickupReport was not
// created through the NewPickupReport constructor.
var ErrPickupReportIsNotConstructed = errors.New(
	"PickupReport must be created via NewPickupReport constructor",
)

// PickupOutcome records what the courier actually found when performing a
// pickup at the property. It is an audit value: it may legitimately disagree
// with the projected expectation, and it never blocks settlement.
type PickupOutcome int

const (
	// PickupOutcomeUnknown represents an invalid or undefined outcome.
	PickupOutcomeUnknown PickupOutcome = iota

	// PickupOutcomeCollected means every expected item was retrieved.
	PickupOutcomeCollected

	// PickupOutcomePartial means some expected items were missing or damaged.
	PickupOutcomePartial

	// PickupOutcomeNothingFound means no dirty linen was found at the property.
	PickupOutcomeNothingFound
)

func getPickupOutcomeStrings() map[PickupOutcome]string {
	return map[PickupOutcome]string{
		PickupOutcomeUnknown:      "unknown",
		PickupOutcomeCollected:    "collected",
		PickupOutcomePartial:      "partial",
		PickupOutcomeNothingFound: "nothing_found",
	}
}

// Validate checks if the PickupOutcome value is valid.
func (p PickupOutcome) Validate() error {
	switch p {
	case PickupOutcomeCollected, PickupOutcomePartial, PickupOutcomeNothingFound:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("pickup outcome is invalid",
			fmt.Errorf("%d is not a valid pickup outcome", p))
	}
}

// String returns the human-readable name of the outcome.
// Implements the fmt.Stringer interface.
func (p PickupOutcome) String() string {
	if str, ok := getPickupOutcomeStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// PickupOutcomeFromString maps a wire string to its PickupOutcome.
// Returns an error for unrecognized values.
func PickupOutcomeFromString(s string) (PickupOutcome, error) {
	for outcome, str := range getPickupOutcomeStrings() {
		if str == s && outcome != PickupOutcomeUnknown {
			return outcome, nil
		}
	}
	return PickupOutcomeUnknown, errs.NewValueIsInvalidErrorWithCause("pickup outcome is invalid",
		fmt.Errorf("%q is not a valid pickup outcome", s))
}

// PickupReportItem is one line of the courier's pickup checklist: which item
// was expected and whether it was found in acceptable condition.
type PickupReportItem struct {
	ItemID   string
	Name     string
	Quantity int
	OK       bool
}

// PickupReport is the courier's account of a performed pickup, attached to
// the delivering order at settlement time. The report is pure audit data:
// settlement retires debt based on the refreshed projection, not on the
// report contents (see the settlement coordinator).
type PickupReport struct {
	outcome PickupOutcome
	note    string
	items   []PickupReportItem

	guard guard.ConstructorGuard
}

// NewPickupReport creates a validated pickup report.
//
// Parameters:
//   - outcome: overall result of the pickup attempt
//   - note: free-form courier note, may be empty
//   - items: per-item checklist results, may be empty
//
// Returns an error if the outcome is invalid.
func NewPickupReport(outcome PickupOutcome, note string, items []PickupReportItem) (PickupReport, error) {
	if err := outcome.Validate(); err != nil {
		return PickupReport{}, err
	}

	return PickupReport{
		outcome: outcome,
		note:    note,
		items:   append([]PickupReportItem(nil), items...),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the report was created through the constructor.
// Returns ErrPickupReportIsNotConstructed if validation fails.
func (r PickupReport) Validate() error {
	return r.guard.Validate(ErrPickupReportIsNotConstructed)
}

// Outcome returns the overall result of the pickup attempt.
func (r PickupReport) Outcome() PickupOutcome {
	return r.outcome
}

// Note returns the courier's free-form note.
func (r PickupReport) Note() string {
	return r.note
}

// Items returns a copy of the per-item checklist results.
func (r PickupReport) Items() []PickupReportItem {
	return append([]PickupReportItem(nil), r.items...)
}

// HasIssues reports whether the courier flagged anything non-OK: an outcome
// other than a full collection, or any checklist line marked not OK.
func (r PickupReport) HasIssues() bool {
	if r.outcome != PickupOutcomeCollected {
		return true
	}
	for _, item := range r.items {
		if !item.OK {
			return true
		}
	}
	return false
}
