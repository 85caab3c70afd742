// Package core defines the shared types and component contracts the review
// pipeline is wired from. Everything here is transient: created at the start
// of one invocation and discarded at process exit.
package core

import "context"

// DiffOptions selects where the diff under review comes from. When DiffFile
// is set it takes precedence over the git-based modes.
type DiffOptions struct {
	DiffFile     string
	TargetBranch string
	StagedOnly   bool
}

// ReviewRequest pairs the fixed reviewer persona with the composed user
// message. It is constructed once per invocation and never mutated.
type ReviewRequest struct {
	System string
	User   string
}

// DiffResolver obtains the raw diff text for one invocation. The diff is
// opaque to the rest of the pipeline and is embedded into the prompt
// verbatim.
type DiffResolver interface {
	Resolve(ctx context.Context, opts DiffOptions) (string, error)
}

// Reviewer submits a review request to the remote model and returns the
// generated review text.
type Reviewer interface {
	Review(ctx context.Context, req ReviewRequest) (string, error)
}

// Renderer writes a generated review to the terminal.
type Renderer interface {
	Render(reviewText string)
}
