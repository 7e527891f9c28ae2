package agents

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jonathan/hireflow/internal/llm"
	"github.com/jonathan/hireflow/internal/prompts"
	"github.com/jonathan/hireflow/internal/schemas"
	"github.com/jonathan/hireflow/internal/types"
)

// Drafter generates interview invitation emails from structured inputs.
type Drafter struct {
	client llm.Client
}

// NewDrafter creates a drafting agent on top of an LLM client.
func NewDrafter(client llm.Client) *Drafter {
	return &Drafter{client: client}
}

// DraftInvitation produces subject, body and recipient for an interview
// invitation. The interview time is passed through as the literal
// instant (RFC 3339 with its zone offset); the agent renders it in a
// human-friendly form without reinterpreting the zone.
func (d *Drafter) DraftInvitation(ctx context.Context, jobText, candidateText string, interviewTime time.Time, format string) (*types.EmailDraft, error) {
	template := prompts.MustGet("agents.json", "draft-invitation")
	prompt := prompts.Format(template, map[string]string{
		"Job":           jobText,
		"Candidate":     candidateText,
		"InterviewTime": interviewTime.Format(time.RFC3339),
		"Format":        format,
	})

	raw, err := d.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Agent: "invitation drafting", Cause: err}
	}

	if err := schemas.Validate(schemas.EmailDraft, []byte(raw)); err != nil {
		return nil, err
	}

	var draft types.EmailDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, &ParseError{Agent: "invitation drafting", Cause: err}
	}
	return &draft, nil
}
