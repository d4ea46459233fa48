package repository

// Page represents a limit/offset window for listing operations.
// Rows are always ordered by primary key ascending, so the same page over unchanged data is stable.
type Page struct {
	Limit  int
	Offset int
}

// Empty reports whether the page cannot contain any row.
func (p Page) Empty() bool { return p.Limit == 0 }
