package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/critic/internal/app"
	"github.com/sevigo/critic/internal/config"
	"github.com/sevigo/critic/internal/core"
	"github.com/sevigo/critic/internal/logger"
)

var (
	diffFile      string
	targetBranch  string
	stagedOnly    bool
	reviewContext string
	modelName     string
	maxTokens     int
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review a code change with Claude",
	Long: `Review a code change with Claude.

The review command collects a unified diff and sends it to the Anthropic API
together with optional free-text context, then prints the structured review.
Without flags it reviews the changes the current branch introduced since it
diverged from the target branch (a three-dot comparison).

Examples:
  critic review
  critic review --staged
  critic review --target-branch develop --context "refactors the auth flow"
  critic review --diff-file changes.diff`,
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVar(&diffFile, "diff-file", "", "Path to a diff file (if not provided, the diff is taken from git)")
	reviewCmd.Flags().StringVar(&targetBranch, "target-branch", "main", "Target branch to compare against")
	reviewCmd.Flags().BoolVar(&stagedOnly, "staged", false, "Review only staged changes")
	reviewCmd.Flags().StringVar(&reviewContext, "context", "", "Additional context about the changes")
	reviewCmd.Flags().StringVar(&modelName, "model", "", "Model to review with (default from MODEL env)")
	reviewCmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Output token ceiling (default from MAX_TOKENS env)")

	for flagName, key := range map[string]string{
		"model":      "MODEL",
		"max-tokens": "MAX_TOKENS",
	} {
		if err := viper.BindPFlag(key, reviewCmd.Flags().Lookup(flagName)); err != nil {
			slog.Error("Error binding flag", "flag", flagName, "error", err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) error {
	// Fail fast on configuration before any subprocess or network work.
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log := logger.NewLogger(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
		File:   cfg.LogFile,
	}, nil)

	application, err := app.New(cfg, log)
	if err != nil {
		return err
	}

	opts := core.DiffOptions{
		DiffFile:     diffFile,
		TargetBranch: targetBranch,
		StagedOnly:   stagedOnly,
	}

	return application.Run(cmd.Context(), opts, reviewContext)
}
