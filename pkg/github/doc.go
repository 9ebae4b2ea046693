// Package github fetches a user's contribution calendar from the GitHub
// GraphQL API and converts it into the grid and month list the calendar
// package renders.
package github
