package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pronoms/internal/game"
)

func TestFetchNext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/new/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"gameSessionId":  "abc123def456gh78",
			"sentenceId":     1,
			"fullSentence":   "Dóna la pilota a mi",
			"difficulty":     "easy",
			"totalSentences": 5,
		})
	}))
	defer srv.Close()

	res, err := NewRemote(srv.URL).FetchNext(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.SessionID != "abc123def456gh78" {
		t.Errorf("session id = %q", res.SessionID)
	}
	if res.Item.ID != 1 || res.Item.FullForm != "Dóna la pilota a mi" || res.Item.Difficulty != game.DifficultyEasy {
		t.Errorf("item = %+v", res.Item)
	}
	if res.TotalItems != 5 {
		t.Errorf("total items = %d", res.TotalItems)
	}
}

func TestFetchNextDefaultsTotalSentences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"gameSessionId": "abc123def456gh78",
			"sentenceId":    1,
			"fullSentence":  "Dóna la pilota a mi",
			"difficulty":    "easy",
		})
	}))
	defer srv.Close()

	res, err := NewRemote(srv.URL).FetchNext(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalItems != 5 {
		t.Errorf("total items = %d, want default 5", res.TotalItems)
	}
}

func TestFetchNextMissingFieldIsValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"sentenceId":   1,
			"fullSentence": "Dóna la pilota a mi",
			"difficulty":   "easy",
		})
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL).FetchNext(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestFetchNextMalformedBodyIsValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL).FetchNext(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestNonOKStatusIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL).FetchNext(context.Background())
	var serr *ServerError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *ServerError", err)
	}
	if serr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d", serr.StatusCode)
	}
}

func TestConnectionRefusedIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := NewRemote(srv.URL).FetchNext(context.Background())
	var uerr *UnreachableError
	if !errors.As(err, &uerr) {
		t.Fatalf("err = %v, want *UnreachableError", err)
	}
}

func TestSubmitAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/check/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req checkAnswerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.GameSessionID != "abc" || req.SentenceID != 2 || req.Answer != "Dóna-me-la" || req.Attempts != 3 {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"correct":       true,
			"correctAnswer": "Dóna-me-la",
			"explanation":   "Pronoms febles combinats",
			"nextSentence": map[string]any{
				"sentenceId":   3,
				"fullSentence": "Porta el llibre a ella",
				"difficulty":   "hard",
			},
		})
	}))
	defer srv.Close()

	res, err := NewRemote(srv.URL).SubmitAnswer(context.Background(), SubmitRequest{
		SessionID: "abc", ItemID: 2, Answer: "Dóna-me-la", Attempts: 3,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Correct || res.ShortForm != "Dóna-me-la" || res.Explanation == "" {
		t.Errorf("result = %+v", res)
	}
	if res.Next == nil || res.Next.ID != 3 || res.Next.Difficulty != game.DifficultyHard {
		t.Errorf("next = %+v", res.Next)
	}
}

func TestSubmitAnswerNullNextSignalsEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"correct": true, "correctAnswer": "Dóna-me-la", "explanation": "fi", "nextSentence": null}`))
	}))
	defer srv.Close()

	res, err := NewRemote(srv.URL).SubmitAnswer(context.Background(), SubmitRequest{
		SessionID: "abc", ItemID: 5, Answer: "Dóna-me-la", Attempts: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Correct || res.Next != nil {
		t.Errorf("result = %+v", res)
	}
}

func TestSubmitAnswerNonBooleanCorrectIsValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"correct": "yes"}`))
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL).SubmitAnswer(context.Background(), SubmitRequest{
		SessionID: "abc", ItemID: 1, Answer: "x", Attempts: 1,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestRequestHint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/hint/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req hintRequestBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.SentenceID != 1 || req.HintCursor != 0 {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"hintText":   "El complement directe va darrere",
			"hintCursor": 1,
			"hintLimit":  2,
		})
	}))
	defer srv.Close()

	res, err := NewRemote(srv.URL).RequestHint(context.Background(), HintRequest{ItemID: 1, Cursor: 0})
	if err != nil {
		t.Fatal(err)
	}
	if res.Text == "" || res.Cursor != 1 || res.Limit != 2 {
		t.Errorf("result = %+v", res)
	}
}

func TestRequestHintNonNumericFieldsAreValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hintText": "pista", "hintCursor": "one", "hintLimit": 2}`))
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL).RequestHint(context.Background(), HintRequest{ItemID: 1, Cursor: 0})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}
