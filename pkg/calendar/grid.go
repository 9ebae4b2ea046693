package calendar

// DaysPerWeek is the number of rows in a Grid.
const DaysPerWeek = 7

// Grid holds one Level per day, indexed [weekday][week]. Weekday 0 is
// Sunday. All rows have the same length, the number of weeks shown.
type Grid [][]Level

// NewGrid allocates a grid of the given number of weeks with every day
// at LevelNone.
func NewGrid(weeks int) Grid {
	g := make(Grid, DaysPerWeek)
	for i := range g {
		g[i] = make([]Level, weeks)
	}
	return g
}

// Weeks returns the number of week columns, taken from the first row.
func (g Grid) Weeks() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Set stores the level for a day.
func (g Grid) Set(weekday, week int, level Level) {
	g[weekday][week] = level
}

// At returns the level of a day.
func (g Grid) At(weekday, week int) Level {
	return g[weekday][week]
}

// Month labels a run of consecutive week columns.
type Month struct {
	Name string
	// Weeks is the number of grid columns the month spans.
	Weeks int
}
