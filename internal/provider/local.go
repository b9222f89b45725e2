package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"pronoms/internal/dataset"
	"pronoms/internal/game"
)

// Local serves sentences from a CSV dataset and grades answers by
// trimmed string equality. Play is an endless pick-one-at-a-time loop:
// there is always a next sentence, hints are not supported, and the
// solution can be revealed on request.
type Local struct {
	coll      *dataset.Collection
	sessionID string
	nextID    int
	issued    map[int]dataset.Record
}

var (
	_ Provider = (*Local)(nil)
	_ Revealer = (*Local)(nil)
	_ Resumer  = (*Local)(nil)
)

// NewLocal creates a provider over the given collection.
func NewLocal(coll *dataset.Collection) *Local {
	return &Local{
		coll:   coll,
		nextID: 1,
		issued: make(map[int]dataset.Record),
	}
}

// FetchNext starts a fresh local session with a random sentence.
func (l *Local) FetchNext(_ context.Context) (*game.FetchResult, error) {
	l.sessionID = uuid.New().String()
	l.nextID = 1
	l.issued = make(map[int]dataset.Record)

	item := l.issue()
	return &game.FetchResult{
		SessionID: l.sessionID,
		Item:      item,
		// TotalItems stays 0: local play has no fixed length.
	}, nil
}

// SubmitAnswer grades locally against the issued sentence.
func (l *Local) SubmitAnswer(_ context.Context, req SubmitRequest) (*game.SubmitResult, error) {
	rec, ok := l.issued[req.ItemID]
	if !ok {
		return nil, fmt.Errorf("unknown sentence id %d", req.ItemID)
	}

	if !dataset.Grade(req.Answer, rec.ShortForm) {
		return &game.SubmitResult{Correct: false}, nil
	}

	next := l.issue()
	return &game.SubmitResult{
		Correct:     true,
		ShortForm:   rec.ShortForm,
		Explanation: rec.Explanation,
		Next:        &next,
	}, nil
}

// Solution exposes the canonical answer for an issued sentence so the
// UI can offer an explicit reveal.
func (l *Local) Solution(itemID int) (string, string, bool) {
	rec, ok := l.issued[itemID]
	if !ok {
		return "", "", false
	}
	return rec.ShortForm, rec.Explanation, true
}

// Resume re-learns a restored session's current sentence by matching
// its full form back to the dataset. Fails if the sentence is no
// longer present, in which case the caller starts fresh.
func (l *Local) Resume(sessionID string, item game.Item) error {
	rec, ok := l.coll.FindByFullForm(item.FullForm)
	if !ok {
		return fmt.Errorf("sentence %q not in dataset", item.FullForm)
	}
	l.sessionID = sessionID
	l.issued[item.ID] = rec
	l.nextID = item.ID + 1
	return nil
}

// issue draws a random record and registers it under a fresh ordinal.
func (l *Local) issue() game.Item {
	rec := l.coll.Random()
	id := l.nextID
	l.nextID++
	l.issued[id] = rec
	return game.Item{
		ID:         id,
		FullForm:   rec.FullForm,
		Difficulty: rec.Difficulty,
	}
}
