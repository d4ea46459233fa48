package repository

import "time"

// Filter fields are pointers: nil means "not requested" and adds no predicate.
// Set fields are combined with AND; strings compare exactly and case-sensitively.

// PlayerFilter narrows player listings by exact name.
type PlayerFilter struct {
	FirstName *string
	LastName  *string
}

// PerformanceFilter narrows performances for incremental sync.
type PerformanceFilter struct {
	// MinLastChangedDate is an inclusive lower bound on last_changed_date.
	MinLastChangedDate *time.Time
}

// TeamFilter narrows team listings by exact name and owning league.
type TeamFilter struct {
	Name     *string
	LeagueID *int64
}
