// Package testutil provides helpers shared by gitcal's tests.
//
// Tests that touch configuration or logging should call IsolateXDG first
// so they never read or write the real user directories.
package testutil
