// Package timeslot defines the salon's fixed bookable time grid.
package timeslot

// The grid runs 09:00 through 19:30 in 30-minute steps. It is part of
// the business contract: any other time label is invalid input.
var grid = []string{
	"09:00", "09:30",
	"10:00", "10:30",
	"11:00", "11:30",
	"12:00", "12:30",
	"13:00", "13:30",
	"14:00", "14:30",
	"15:00", "15:30",
	"16:00", "16:30",
	"17:00", "17:30",
	"18:00", "18:30",
	"19:00", "19:30",
}

var valid = func() map[string]struct{} {
	m := make(map[string]struct{}, len(grid))
	for _, s := range grid {
		m[s] = struct{}{}
	}
	return m
}()

// Valid reports whether label is one of the enumerated slot labels.
func Valid(label string) bool {
	_, ok := valid[label]
	return ok
}

// All returns the full grid in chronological order. The returned slice
// is a copy and safe to mutate.
func All() []string {
	out := make([]string, len(grid))
	copy(out, grid)
	return out
}
