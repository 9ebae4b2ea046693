package calendar

import (
	"github.com/arthur-debert/gitcal/pkg/errors"
)

// Level is the contribution intensity of a single day, bucketed by
// quartile. The zero value is LevelNone.
type Level int

const (
	LevelNone Level = iota
	LevelFirst
	LevelSecond
	LevelThird
	LevelFourth
)

// levelNames are the contributionLevel values used by the GitHub API
var levelNames = [...]string{
	LevelNone:   "NONE",
	LevelFirst:  "FIRST_QUARTILE",
	LevelSecond: "SECOND_QUARTILE",
	LevelThird:  "THIRD_QUARTILE",
	LevelFourth: "FOURTH_QUARTILE",
}

// Levels returns every level from lowest to highest.
func Levels() []Level {
	return []Level{LevelNone, LevelFirst, LevelSecond, LevelThird, LevelFourth}
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= LevelNone && l <= LevelFourth
}

// String returns the API name of the level.
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel maps an API contributionLevel string to a Level. Unknown
// values are an error, never a silent LevelNone.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if name == s {
			return Level(i), nil
		}
	}
	return LevelNone, errors.Newf(errors.ErrInvalidLevel, "unknown contribution level %q", s).
		WithDetail("value", s)
}
