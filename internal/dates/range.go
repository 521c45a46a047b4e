package dates

// Range is a closed interval of calendar dates. Both boundaries are included.
type Range struct {
	From, To Date
}

// Contains reports whether the date falls inside the range, boundaries
// included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}
