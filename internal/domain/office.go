package domain

// Origin of an office-location change.
type OfficeSource string

const (
	SourceManualSearch OfficeSource = "manual-search"
	SourceDrag         OfficeSource = "drag"
	SourceOptimized    OfficeSource = "optimized"
	SourceDefault      OfficeSource = "default"
)

// ValidOfficeSource reports whether s names a known location source.
func ValidOfficeSource(s OfficeSource) bool {
	switch s {
	case SourceManualSearch, SourceDrag, SourceOptimized, SourceDefault:
		return true
	}
	return false
}

// The candidate office location under evaluation. Owned by the
// presentation layer and passed by value into the engine; the engine
// holds no office state of its own.
type OfficeLocation struct {
	Coordinate Coordinate
	Source     OfficeSource
}
