// Package app wires the review pipeline together and runs it end to end:
// resolve the diff, build the prompt, call the model, render the result.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevigo/critic/internal/config"
	"github.com/sevigo/critic/internal/core"
	"github.com/sevigo/critic/internal/gitutil"
	"github.com/sevigo/critic/internal/llm"
	"github.com/sevigo/critic/internal/render"
)

// App holds the wired components of the review pipeline.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	resolver core.DiffResolver
	builder  *llm.RequestBuilder
	reviewer core.Reviewer
	renderer core.Renderer
}

// New builds the production pipeline from validated configuration.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	builder, err := llm.NewRequestBuilder()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	client, err := llm.NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	return NewWithComponents(cfg, logger, gitutil.NewResolver(logger, "."), builder, client, render.NewRenderer(nil)), nil
}

// NewWithComponents wires an App from explicit components. Tests use this to
// substitute fakes for the git subprocess and the remote model.
func NewWithComponents(
	cfg *config.Config,
	logger *slog.Logger,
	resolver core.DiffResolver,
	builder *llm.RequestBuilder,
	reviewer core.Reviewer,
	renderer core.Renderer,
) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg:      cfg,
		logger:   logger,
		resolver: resolver,
		builder:  builder,
		reviewer: reviewer,
		renderer: renderer,
	}
}

// Run executes one review invocation. The flow is strictly linear with a
// single network round-trip. A clean empty diff is a no-op success; every
// other failure has been logged where it was detected and is returned for
// the command layer to turn into a non-zero exit. Nothing is rendered unless
// the full review arrived.
func (a *App) Run(ctx context.Context, opts core.DiffOptions, reviewContext string) error {
	diff, err := a.resolver.Resolve(ctx, opts)
	if err != nil {
		if errors.Is(err, gitutil.ErrNoChanges) {
			a.logger.Info("no changes found to review")
			return nil
		}
		return err
	}

	req, err := a.builder.Build(diff, reviewContext)
	if err != nil {
		return err
	}

	a.logger.Info("reviewing code", "model", a.cfg.Model)
	review, err := a.reviewer.Review(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get review from API, check the log for details: %w", err)
	}

	a.renderer.Render(review)
	return nil
}
