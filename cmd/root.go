package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/conceptsort/internal/config"
	"github.com/abhisek/conceptsort/internal/logging"
)

// logOff disables logging when passed as --log-file.
const logOff = "off"

// appState is the state prepared by the persistent pre-run hook.
var appState struct {
	cfg       *config.Config
	log       zerolog.Logger
	logCloser io.Closer
}

var rootCmd = &cobra.Command{
	Use:   "conceptsort [sources...]",
	Short: "Drag-and-drop concept sorting quiz",
	Long: `ConceptSort is a terminal quiz: move each concept into the group it belongs to.

Sources are activity files (.json, .yaml), http(s) URLs or llm:<topic>
references. Without arguments the sources come from --quiz or
CONCEPTSORT_SOURCES. Generating from a topic needs an LLM API key
(ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY).`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("log-file", "", "Log file path, or \"off\" (overrides CONCEPTSORT_LOG_FILE)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides CONCEPTSORT_LOG_LEVEL)")
	pf.StringSlice("env-file", []string{".env"}, "Dotenv files to load before reading the environment")

	rootCmd.Flags().String("quiz", "", "YAML quiz manifest (overrides CONCEPTSORT_QUIZ)")
	rootCmd.Flags().Uint64("seed", 0, "Shuffle seed for reproducible item order (overrides CONCEPTSORT_SHUFFLE_SEED)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and opens the log, in that order, so flags
// override .env files which never override the real environment.
func setup(cmd *cobra.Command, _ []string) error {
	envFiles, _ := cmd.Flags().GetStringSlice("env-file")
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile, _ = cmd.Flags().GetString("log-file")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	log, closer, err := logging.New(resolveLogPath(cfg.LogFile), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	appState.cfg = cfg
	appState.log = log
	appState.logCloser = closer
	cmd.SetContext(logging.IntoContext(cmd.Context(), log))

	log.Debug().Str("command", cmd.Name()).Str("version", version).Msg("starting")
	return nil
}

func teardown(*cobra.Command, []string) error {
	if appState.logCloser != nil {
		return appState.logCloser.Close()
	}
	return nil
}

// resolveLogPath maps the configured value to a file path. Empty means the
// default state file; "off" disables logging.
func resolveLogPath(p string) string {
	switch p {
	case "":
		return logging.DefaultPath()
	case logOff:
		return ""
	}
	return p
}
