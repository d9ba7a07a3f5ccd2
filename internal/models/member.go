package models

import "fmt"

// PaydayLastDay is the PaydayDay sentinel meaning "last day of the month".
const PaydayLastDay = -1

// Household groups the members that share expenses.
type Household struct {
	// ID is the unique identifier for the household (UUID format).
	ID string

	// Name is the display name of the household (e.g., "Flat 3B").
	Name string

	// CreatedAt is the Unix timestamp when the household was created.
	CreatedAt int64
}

// Member is a person in a household.
//
// PaydayDay is the single source of truth for the member's budget cycle.
// No period boundaries are stored alongside it.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// HouseholdID is the household this member belongs to.
	HouseholdID string

	// DisplayName is the member's name as shown to the partner.
	DisplayName string

	// PaydayDay is the day-of-month (1..31) that starts the member's
	// budget period, or PaydayLastDay.
	PaydayDay int

	// Active is false for members who left the household.
	// Inactive members are ignored when resolving a partner.
	Active bool

	// CreatedAt is the Unix timestamp when the member joined.
	CreatedAt int64
}

// ValidatePayday reports whether day is an allowed PaydayDay value.
func ValidatePayday(day int) error {
	if day == PaydayLastDay || (day >= 1 && day <= 31) {
		return nil
	}
	return Validationf("payday %d must be 1-31 or %d (last day of month)", day, PaydayLastDay)
}

// String implements fmt.Stringer for log output.
func (m *Member) String() string {
	return fmt.Sprintf("%s (%s)", m.DisplayName, m.ID)
}
