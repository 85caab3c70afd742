// Package gitutil obtains the diff under review, either from the local Git
// repository or from a diff file on disk.
package gitutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/sevigo/critic/internal/core"
)

var (
	// ErrNoChanges indicates git ran successfully but produced an empty diff.
	// Callers treat this as a clean no-op, not a failure.
	ErrNoChanges = errors.New("no changes found to review")

	// ErrDiffUnavailable indicates the git invocation itself failed. The
	// diagnostic output has already been logged by the time this is returned.
	ErrDiffUnavailable = errors.New("could not get diff from git")
)

// GitRunner executes a git command in the given directory and returns its
// standard output. It exists so tests can substitute a fake for the real
// subprocess.
type GitRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

type execGitRunner struct{}

func (execGitRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(stderr.String()), err)
	}
	return stdout.String(), nil
}

// Resolver produces the diff text for one review invocation.
type Resolver struct {
	runner GitRunner
	logger *slog.Logger
	dir    string
}

// NewResolver returns a Resolver that shells out to the git CLI in dir.
func NewResolver(logger *slog.Logger, dir string) *Resolver {
	return NewResolverWithRunner(execGitRunner{}, logger, dir)
}

// NewResolverWithRunner returns a Resolver with a custom git runner.
func NewResolverWithRunner(runner GitRunner, logger *slog.Logger, dir string) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{runner: runner, logger: logger, dir: dir}
}

// Resolve returns the unified diff selected by opts. A DiffFile path wins
// over the git-based modes. The returned text is opaque; nothing downstream
// parses it.
func (r *Resolver) Resolve(ctx context.Context, opts core.DiffOptions) (string, error) {
	if opts.DiffFile != "" {
		return r.readDiffFile(opts.DiffFile)
	}
	return r.gitDiff(ctx, opts)
}

func (r *Resolver) readDiffFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("diff file %q not found: %w", path, err)
		}
		return "", fmt.Errorf("failed to read diff file %q: %w", path, err)
	}
	return string(data), nil
}

// gitDiff asks git for either the staged changes or a three-dot comparison
// against the target branch. Three-dot means "changes on the current branch
// since it diverged from the target", not a raw two-way diff.
func (r *Resolver) gitDiff(ctx context.Context, opts core.DiffOptions) (string, error) {
	if _, err := git.PlainOpenWithOptions(r.dir, &git.PlainOpenOptions{DetectDotGit: true}); err != nil {
		r.logger.Error("not inside a git repository", "dir", r.dir, "error", err)
		return "", ErrDiffUnavailable
	}

	var args []string
	if opts.StagedOnly {
		args = []string{"diff", "--cached"}
	} else {
		args = []string{"diff", fmt.Sprintf("%s...HEAD", opts.TargetBranch)}
	}

	r.logger.Info("getting git diff", "command", "git "+strings.Join(args, " "))
	out, err := r.runner.Run(ctx, r.dir, args...)
	if err != nil {
		r.logger.Error("error getting git diff", "error", err)
		return "", ErrDiffUnavailable
	}

	if strings.TrimSpace(out) == "" {
		return "", ErrNoChanges
	}
	return out, nil
}
