package cli

import (
	"fmt"

	"github.com/arthur-debert/gitcal/internal/version"
	"github.com/arthur-debert/gitcal/pkg/calendar"
	"github.com/arthur-debert/gitcal/pkg/palette"
	"github.com/arthur-debert/gitcal/pkg/paths"
	"github.com/arthur-debert/gitcal/pkg/ui"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newConfigCmd(configPath *string) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &flags, *configPath)
			if err != nil {
				return err
			}
			// Catch bad values here rather than on the next draw
			if _, err := cfg.Resolve(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if src := cfg.Source(); src != "" {
				fmt.Fprintf(out, MsgConfigSource, src)
			} else {
				fmt.Fprintf(out, MsgConfigNoFile, paths.DefaultConfigFile())
			}

			content, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, content)
			return err
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: MsgThemesShort,
		Long:  MsgThemesLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			profile := ui.ColorAuto.Profile(outputFile(out))

			for _, name := range palette.ThemeNames() {
				p, err := palette.Theme(name)
				if err != nil {
					return err
				}
				legend := calendar.New().
					WithPalette(p).
					WithOptions(calendar.DisplayOptions{}).
					WithColorProfile(profile).
					Legend()
				if name == palette.DefaultTheme {
					legend += MsgThemeDefault
				}
				fmt.Fprintf(out, MsgThemeItem, name, legend)
			}
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
