package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arthur-debert/gitcal/internal/version"
	"github.com/arthur-debert/gitcal/pkg/calendar"
	"github.com/arthur-debert/gitcal/pkg/config"
	"github.com/arthur-debert/gitcal/pkg/github"
	"github.com/arthur-debert/gitcal/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
		token      string
		flags      renderFlags
	)

	rootCmd := &cobra.Command{
		Use:     "gitcal",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalendar(cmd, &flags, configPath, token)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.Flags().StringVar(&token, "token", "", MsgFlagToken)
	flags.register(rootCmd.Flags())

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(&configPath))
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig reads the layered configuration with the flags on top
func loadConfig(cmd *cobra.Command, flags *renderFlags, configPath string) (*config.Config, error) {
	overrides, err := flags.overrides(cmd.Flags())
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(config.LoadOptions{Path: configPath, Overrides: overrides})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// runCalendar is the default action: resolve settings, fetch, draw.
func runCalendar(cmd *cobra.Command, flags *renderFlags, configPath, tokenFlag string) error {
	logger := logging.GetLogger("cli")

	cfg, err := loadConfig(cmd, flags, configPath)
	if err != nil {
		return err
	}
	settings, err := cfg.Resolve()
	if err != nil {
		return err
	}

	token, err := config.LoadToken(tokenFlag)
	if err != nil {
		return err
	}

	client := github.NewClient(token)
	client.Endpoint = settings.Endpoint
	client.UserAgent = "gitcal/" + version.Version

	ctx, cancel := context.WithTimeout(cmd.Context(), settings.Timeout)
	defer cancel()

	from, to := settings.Window.Range(time.Now())
	logger.Info().
		Str("window", settings.Window.String()).
		Str("username", settings.Username).
		Msg("Fetching contribution calendar")

	cc, err := client.FetchCalendar(ctx, github.Request{
		Username: settings.Username,
		From:     from,
		To:       to,
	})
	if err != nil {
		return fmt.Errorf(MsgErrFetchCalendar, err)
	}

	grid, months, err := cc.Grid()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cal := calendar.New().
		WithGrid(grid).
		WithMonths(months).
		WithPalette(settings.Palette).
		WithStyle(settings.Style).
		WithOptions(settings.Options).
		WithColorProfile(settings.ColorMode.Profile(outputFile(out)))

	if err := cal.Validate(); err != nil {
		logger.Warn().Err(err).Msg(MsgWarnInconsistent)
	}

	_, err = cal.WriteTo(out)
	return err
}

// outputFile returns w as a file when it is one, for terminal detection
func outputFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
