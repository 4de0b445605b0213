package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/conceptsort/internal/activity"
	"github.com/abhisek/conceptsort/internal/app"
	"github.com/abhisek/conceptsort/internal/conceptgen"
	"github.com/abhisek/conceptsort/internal/config"
	"github.com/abhisek/conceptsort/internal/llm"
	"github.com/abhisek/conceptsort/internal/quiz"
	"github.com/abhisek/conceptsort/internal/screens/board"
	"github.com/abhisek/conceptsort/internal/screens/home"
	"github.com/abhisek/conceptsort/internal/sorting"
)

// runApp resolves the quiz sources, builds the optional generator and
// launches the TUI.
func runApp(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := appState.cfg
	log := appState.log

	if cmd.Flags().Changed("quiz") {
		cfg.Quiz, _ = cmd.Flags().GetString("quiz")
	}
	if cmd.Flags().Changed("seed") {
		cfg.ShuffleSeed, _ = cmd.Flags().GetUint64("seed")
	}

	opts := home.Options{ConceptsPerGroup: cfg.ConceptsPerGroup}

	provider, llmCfg, err := llm.NewProviderFromEnv(ctx, log)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		log.Info().Msg("no LLM provider configured; topic generation disabled")
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not available:", err)
		fmt.Fprintln(os.Stderr, "Topic generation will be unavailable.")
	default:
		opts.Generator = newGenerator(provider, cfg)
		opts.ProviderName = llmCfg.Provider
	}

	sources, title, err := resolveSources(args, cfg, opts.Generator)
	if err != nil {
		return fmt.Errorf("resolve sources: %w", err)
	}
	opts.QuizTitle = title

	sessionOpts := []quiz.Option{quiz.WithLogger(log)}
	if cfg.ShuffleSeed != 0 {
		sessionOpts = append(sessionOpts, quiz.WithRoundOptions(sorting.WithSeed(cfg.ShuffleSeed)))
	}
	opts.Board = board.Config{
		Sources:        sources,
		LoadTimeout:    cfg.LoadTimeout,
		SessionOptions: sessionOpts,
	}

	return app.Run(ctx, app.Options{Home: opts})
}

func newGenerator(provider llm.Provider, cfg *config.Config) conceptgen.Generator {
	genCfg := conceptgen.DefaultConfig()
	genCfg.ConceptsPerGroup = cfg.ConceptsPerGroup
	return conceptgen.New(provider, genCfg)
}

// resolveSources builds the quiz sources from positional arguments,
// CONCEPTSORT_SOURCES or the quiz manifest, in that order of preference.
// The title is set only when a manifest was used.
func resolveSources(args []string, cfg *config.Config, gen conceptgen.Generator) ([]activity.Source, string, error) {
	r := activity.Resolver{}
	if gen != nil {
		r.Topic = conceptgen.TopicHook(gen, cfg.ConceptsPerGroup)
	}

	switch {
	case len(args) > 0:
		sources, err := r.ResolveAll(args)
		return sources, "", err
	case len(cfg.Sources) > 0:
		sources, err := r.ResolveAll(cfg.Sources)
		return sources, "", err
	case cfg.Quiz != "":
		m, err := activity.LoadManifest(cfg.Quiz)
		if err != nil {
			return nil, "", err
		}
		sources, err := m.Resolve(r)
		return sources, m.Title, err
	}
	return nil, "", nil
}
