// Package paths centralizes where gitcal reads and writes files. It
// follows the XDG Base Directory specification through adrg/xdg.
package paths
