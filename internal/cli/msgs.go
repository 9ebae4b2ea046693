package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Show your GitHub contribution calendar in the terminal"
	MsgVersionShort    = "Print version information"
	MsgConfigShort     = "Print the effective configuration"
	MsgThemesShort     = "List the built-in color themes"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgVersionFormat = "gitcal %s (commit %s, built %s)\n"
	MsgConfigSource  = "# loaded from %s\n"
	MsgConfigNoFile  = "# no configuration file found, create %s to customize\n"
	MsgThemeItem     = "%-14s %s\n"
	MsgThemeDefault  = " (default)"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrFetchCalendar = "failed to fetch contribution calendar: %w"

	// Warnings
	MsgWarnInconsistent = "Contribution data is inconsistent, drawing it anyway"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Read configuration from this file instead of the XDG location"
	MsgFlagUsername   = "GitHub username (defaults to the token owner)"
	MsgFlagToken      = "GitHub token (uses $GITHUB_TOKEN if not specified)"
	MsgFlagBlock      = "Use block tiles"
	MsgFlagHalf       = "Use block tiles without spaces"
	MsgFlagCircle     = "Use circle tiles (needs a Nerd Font)"
	MsgFlagYTD        = "Show the current year to date"
	MsgFlagMonth      = "Show the current month"
	MsgFlagTheme      = "Color theme, see 'gitcal themes'"
	MsgFlagBase       = "Set base (background) color"
	MsgFlagText       = "Set text color"
	MsgFlagColor0     = "Set color for no contributions"
	MsgFlagColor1     = "Set color for first quartile"
	MsgFlagColor2     = "Set color for second quartile"
	MsgFlagColor3     = "Set color for third quartile"
	MsgFlagColor4     = "Set color for fourth quartile"
	MsgFlagHideDays   = "Hide day-of-the-week labels"
	MsgFlagHideMonths = "Hide month names in the header"
	MsgFlagLegend     = "Show a Less/More legend below the calendar"
	MsgFlagColor      = "When to use color: auto, always or never"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/themes-long.txt
	msgThemesLongRaw string
	MsgThemesLong    = strings.TrimSpace(msgThemesLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
