package github

import (
	"github.com/arthur-debert/gitcal/pkg/calendar"
	"github.com/arthur-debert/gitcal/pkg/errors"
)

// ContributionCalendar mirrors the contributionCalendar object of the
// GraphQL API.
type ContributionCalendar struct {
	Weeks  []Week  `json:"weeks"`
	Months []Month `json:"months"`
}

type Week struct {
	ContributionDays []Day `json:"contributionDays"`
}

type Day struct {
	// Weekday is 0 for Sunday through 6 for Saturday.
	Weekday           int    `json:"weekday"`
	ContributionLevel string `json:"contributionLevel"`
}

type Month struct {
	Name       string `json:"name"`
	TotalWeeks int    `json:"totalWeeks"`
}

// Grid converts the API calendar into a renderable grid and month list.
// The grid has one column per API week; days missing from a partial
// week stay at LevelNone.
func (cc *ContributionCalendar) Grid() (calendar.Grid, []calendar.Month, error) {
	grid := calendar.NewGrid(len(cc.Weeks))
	for week, w := range cc.Weeks {
		for _, day := range w.ContributionDays {
			if day.Weekday < 0 || day.Weekday >= calendar.DaysPerWeek {
				return nil, nil, errors.Newf(errors.ErrAPIResponse,
					"weekday %d out of range in week %d", day.Weekday, week)
			}
			level, err := calendar.ParseLevel(day.ContributionLevel)
			if err != nil {
				return nil, nil, err
			}
			grid.Set(day.Weekday, week, level)
		}
	}

	months := make([]calendar.Month, 0, len(cc.Months))
	for _, m := range cc.Months {
		months = append(months, calendar.Month{Name: m.Name, Weeks: m.TotalWeeks})
	}
	return grid, months, nil
}
