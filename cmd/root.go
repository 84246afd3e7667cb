package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/minutes-api/pkg/config"
	"github.com/killallgit/minutes-api/pkg/logging"
)

// skipConfig marks commands that run without loading configuration
const skipConfig = "skip-config"

var (
	appConfig *config.Config
	logger    = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minutes-api",
	Short: "Meeting transcription API server",
	Long: `Minutes API - Meeting transcription backed by the Gemini API

Upload a meeting recording, get a speaker-labelled transcript, edit it,
rename speakers and generate a summary, keywords and action items.

Features:
  • Speaker-separated transcription of audio files
  • Editable transcript with speaker renaming
  • Summary, keyword and action item extraction
  • CSV, Markdown and plain text export
  • Raw response diagnostics store`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultConfigPath, "path to the settings file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration and builds the logger before a command runs
func loadConfig(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipConfig] == "true" {
		return nil
	}

	path, _ := cmd.Flags().GetString("config")
	if err := config.InitFromFile(path); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	// flags win over the settings file
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.Logging.Level = f.Value.String()
	}
	if f := cmd.Flags().Lookup("json-logs"); f != nil && f.Changed {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		cfg.Logging.Format = "console"
		if jsonLogs {
			cfg.Logging.Format = "json"
		}
	}

	l, err := logging.New(cfg.Logging.Level, cfg.Logging.Format == "json")
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)

	appConfig = cfg
	logger = l
	return nil
}
