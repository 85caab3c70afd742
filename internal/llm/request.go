package llm

import (
	"fmt"

	"github.com/sevigo/critic/internal/core"
)

// RequestData carries the fields interpolated into the user prompt template.
type RequestData struct {
	Context string
	Diff    string
}

// RequestBuilder composes review requests from the embedded prompt
// templates. Building is deterministic and has no side effects.
type RequestBuilder struct {
	promptMgr *PromptManager
}

func NewRequestBuilder() (*RequestBuilder, error) {
	pm, err := NewPromptManager()
	if err != nil {
		return nil, err
	}
	return &RequestBuilder{promptMgr: pm}, nil
}

// Build pairs the fixed reviewer persona with a user message that embeds the
// diff verbatim in a fenced block, preceded by the optional free-text
// context. The diff is passed through uncapped, however large.
func (b *RequestBuilder) Build(diff, reviewContext string) (core.ReviewRequest, error) {
	system, err := b.promptMgr.Render(ReviewSystemPrompt, DefaultProvider, nil)
	if err != nil {
		return core.ReviewRequest{}, fmt.Errorf("failed to render system prompt: %w", err)
	}

	user, err := b.promptMgr.Render(ReviewUserPrompt, DefaultProvider, RequestData{
		Context: reviewContext,
		Diff:    diff,
	})
	if err != nil {
		return core.ReviewRequest{}, fmt.Errorf("failed to render user prompt: %w", err)
	}

	return core.ReviewRequest{System: system, User: user}, nil
}
