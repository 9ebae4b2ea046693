// Package calendar renders a contribution calendar as colored terminal
// text.
//
// The input is a Grid of contribution levels indexed [weekday][week]
// (weekday 0 is Sunday) and the ordered list of months the weeks belong
// to. The output is a block of lines: an optional month header, one row
// per weekday, and an optional spacer row, every cell painted on the
// palette's base color so the calendar reads as a solid tile.
//
// Rendering is a pure function of its inputs. It never fails: callers
// must hand it a grid with seven equal-length rows, and Validate is
// available to check that (plus the month spans) beforehand.
package calendar
