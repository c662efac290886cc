package domain

// Represents one roster entry: an employee home address and, optionally,
// a secondary client-office address. Coordinates are nil until geocoded;
// they are set once per roster import and never mutated afterward
// (re-upload replaces the whole roster).
//
// Invariant: an employee with an empty ClientOfficeAddress never acquires
// a ClientOffice coordinate.
type Employee struct {
	ID                  int
	Name                string
	HomeAddress         string
	Home                *Coordinate
	ClientOfficeAddress string
	ClientOffice        *Coordinate
}

// HomeResolved reports whether the home address geocoded successfully.
// Employees without a resolved home are excluded from commute results but
// remain in the roster.
func (e Employee) HomeResolved() bool { return e.Home != nil }
