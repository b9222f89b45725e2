// Package provider defines the data-provider contract the game session
// depends on, with two mutually exclusive implementations: a remote
// JSON API and a local CSV dataset.
package provider

import (
	"context"

	"pronoms/internal/game"
)

// SubmitRequest carries an answer submission to a provider.
type SubmitRequest struct {
	SessionID string
	ItemID    int
	Answer    string
	Attempts  int
}

// HintRequest asks for the next hint for the current sentence.
type HintRequest struct {
	ItemID int
	Cursor int
}

// Provider supplies sentences and grading. Exactly one implementation
// is active in a given run.
type Provider interface {
	// FetchNext starts a session (or serves the next pick in local
	// mode) and returns the first sentence.
	FetchNext(ctx context.Context) (*game.FetchResult, error)

	// SubmitAnswer grades an answer.
	SubmitAnswer(ctx context.Context, req SubmitRequest) (*game.SubmitResult, error)
}

// Hinter is the optional hint capability. The local dataset provider
// does not implement it.
type Hinter interface {
	RequestHint(ctx context.Context, req HintRequest) (*game.HintResult, error)
}

// Revealer is the optional solution-reveal capability, supported by
// providers that hold the canonical answers locally.
type Revealer interface {
	Solution(itemID int) (shortForm, explanation string, ok bool)
}

// Resumer is implemented by providers that need to re-learn a restored
// session's current sentence (the local provider grades against it).
type Resumer interface {
	Resume(sessionID string, item game.Item) error
}
