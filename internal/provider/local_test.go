package provider

import (
	"context"
	"testing"

	"pronoms/internal/dataset"
	"pronoms/internal/game"
)

func testCollection(t *testing.T) *dataset.Collection {
	t.Helper()
	records := []dataset.Record{
		{FullForm: "Dóna la pilota a mi", ShortForm: "Dóna-me-la", Difficulty: game.DifficultyEasy, Explanation: "CD + CI"},
		{FullForm: "Porta el llibre a ella", ShortForm: "Porta-l'hi", Difficulty: game.DifficultyHard, Explanation: "Combinació"},
	}
	return dataset.NewCollection(records, 7)
}

func TestLocalFetchNext(t *testing.T) {
	l := NewLocal(testCollection(t))

	res, err := l.FetchNext(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.SessionID == "" {
		t.Error("local session needs an identifier")
	}
	if res.Item.ID != 1 || res.Item.FullForm == "" {
		t.Errorf("item = %+v", res.Item)
	}
	if res.TotalItems != 0 {
		t.Errorf("total items = %d, want 0 (endless)", res.TotalItems)
	}
}

func TestLocalGradingAndEndlessNext(t *testing.T) {
	l := NewLocal(testCollection(t))
	ctx := context.Background()

	first, err := l.FetchNext(ctx)
	if err != nil {
		t.Fatal(err)
	}
	short, explanation, ok := l.Solution(first.Item.ID)
	if !ok {
		t.Fatal("solution unavailable for issued sentence")
	}
	if explanation == "" {
		t.Error("explanation missing")
	}

	wrong, err := l.SubmitAnswer(ctx, SubmitRequest{SessionID: first.SessionID, ItemID: first.Item.ID, Answer: "malament", Attempts: 1})
	if err != nil {
		t.Fatal(err)
	}
	if wrong.Correct || wrong.ShortForm != "" {
		t.Errorf("wrong answer leaked content: %+v", wrong)
	}

	right, err := l.SubmitAnswer(ctx, SubmitRequest{SessionID: first.SessionID, ItemID: first.Item.ID, Answer: "  " + short + " ", Attempts: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !right.Correct || right.ShortForm != short {
		t.Errorf("result = %+v", right)
	}
	// Local play never ends: a next sentence is always staged.
	if right.Next == nil || right.Next.ID != first.Item.ID+1 {
		t.Errorf("next = %+v", right.Next)
	}
}

func TestLocalSubmitUnknownItem(t *testing.T) {
	l := NewLocal(testCollection(t))
	if _, err := l.SubmitAnswer(context.Background(), SubmitRequest{ItemID: 99, Answer: "x"}); err == nil {
		t.Fatal("expected an error for an unissued sentence")
	}
}

func TestLocalResume(t *testing.T) {
	l := NewLocal(testCollection(t))

	err := l.Resume("saved-session", game.Item{ID: 4, FullForm: "Porta el llibre a ella"})
	if err != nil {
		t.Fatal(err)
	}

	res, err := l.SubmitAnswer(context.Background(), SubmitRequest{SessionID: "saved-session", ItemID: 4, Answer: "Porta-l'hi", Attempts: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Correct {
		t.Error("restored sentence not graded against the dataset")
	}
	if res.Next == nil || res.Next.ID != 5 {
		t.Errorf("next = %+v", res.Next)
	}

	if err := l.Resume("saved-session", game.Item{ID: 1, FullForm: "frase desapareguda"}); err == nil {
		t.Error("resume should fail for a sentence missing from the dataset")
	}
}
