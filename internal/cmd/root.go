package cmd

import (
	"fmt"
	"os"

	"github.com/hoppxi/bright/internal/manager"
	"github.com/hoppxi/bright/pkg/operation"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// display is swapped out in tests.
var display = operation.Display

var rootCmd = &cobra.Command{
	Use:   "bright <brightness>",
	Short: "Set the display backlight brightness through logind",
	Long: `Bright asks systemd-logind to set the intel_backlight brightness
of the current session. The value is a raw device level, not a percentage.`,
	Args: cobra.ArbitraryArgs,
	// Values like -5 must reach the parser rather than be read as flags.
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(manager.Config.Settings().LogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		argv := append([]string{cmd.Name()}, args...)
		return display.Run(cmd.Context(), argv)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}
