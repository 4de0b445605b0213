package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/conceptsort/internal/activity"
	"github.com/abhisek/conceptsort/internal/conceptgen"
	"github.com/abhisek/conceptsort/internal/llm"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an activity file for a topic with the configured LLM",
	Example: `  conceptsort generate --topic "renewable vs fossil energy" --out energy.json
  conceptsort generate --topic cells --concepts 4 --out cells.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		topic, _ := cmd.Flags().GetString("topic")
		perGroup, _ := cmd.Flags().GetInt("concepts")
		outPath, _ := cmd.Flags().GetString("out")

		if !cmd.Flags().Changed("concepts") {
			perGroup = appState.cfg.ConceptsPerGroup
		}

		provider, llmCfg, err := llm.NewProviderFromEnv(ctx, appState.log)
		if err != nil {
			if errors.Is(err, llm.ErrNotConfigured) {
				return err
			}
			return fmt.Errorf("init LLM provider: %w", err)
		}

		if llmCfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, llmCfg.Timeout)
			defer cancel()
		}

		gen := newGenerator(provider, appState.cfg)
		a, err := gen.Generate(ctx, conceptgen.Input{Topic: topic, ConceptsPerGroup: perGroup})
		if err != nil {
			return err
		}

		data, err := activity.EncodeFormat(a, activity.FormatFromPath(outPath))
		if err != nil {
			return fmt.Errorf("encode activity: %w", err)
		}

		if outPath == "" {
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %q (%d concepts) to %s\n", a.Title, a.ConceptCount(), outPath)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("topic", "", "Topic to build the activity around")
	generateCmd.Flags().Int("concepts", 0, "Concepts per group (default from CONCEPTSORT_CONCEPTS_PER_GROUP)")
	generateCmd.Flags().StringP("out", "o", "", "Output file (.json, .yaml); stdout when empty")
	_ = generateCmd.MarkFlagRequired("topic")
}
