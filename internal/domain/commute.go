package domain

// Transport mode for a commute leg.
type Mode string

const (
	ModeDriving Mode = "driving"
	ModeTransit Mode = "transit"
)

// One mode-specific commute estimate between two points.
// Nil metrics mean "unresolved": the service call failed or returned no
// route. Unresolved is an explicit no-data state, never defaulted to zero.
type CommuteLeg struct {
	Mode            Mode
	DurationMinutes *float64
	DistanceKm      *float64
	// Human-readable transit line summary, empty for driving legs and
	// for unresolved transit legs.
	TransitSummary string
}

// Resolved reports whether the leg carries usable metrics.
func (l CommuteLeg) Resolved() bool {
	return l.DurationMinutes != nil && l.DistanceKm != nil
}

// Driving and transit estimates for one origin-destination pair.
type CommutePair struct {
	Driving CommuteLeg
	Transit CommuteLeg
}

// Commute metrics for one employee with a resolved home coordinate.
// ClientOffice is nil when the employee has no resolved client-office
// coordinate (absent, not present-with-nulls).
type CommuteResult struct {
	EmployeeID   int
	MainOffice   CommutePair
	ClientOffice *CommutePair
}

// Summary statistics over one committed result set. Averages are nil when
// no leg of that mode resolved. Derived data, recomputed on every commit.
type Statistics struct {
	EmployeeCount         int
	AverageDrivingMinutes *float64
	AverageTransitMinutes *float64
}
