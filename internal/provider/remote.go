package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pronoms/internal/game"
)

const (
	defaultTimeout = 15 * time.Second

	newPath   = "/api/new/"
	checkPath = "/api/check/"
	hintPath  = "/api/hint/"

	// totalSentences the service serves per day when it omits the
	// count from its first response.
	defaultTotalSentences = 5
)

// Remote talks to the quiz service over HTTP/JSON.
type Remote struct {
	client  *http.Client
	baseURL string
}

var (
	_ Provider = (*Remote)(nil)
	_ Hinter   = (*Remote)(nil)
)

// NewRemote creates a remote provider targeting baseURL.
func NewRemote(baseURL string) *Remote {
	return &Remote{
		client:  &http.Client{Timeout: defaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type newSentenceResponse struct {
	GameSessionID  string `json:"gameSessionId"`
	SentenceID     int    `json:"sentenceId"`
	FullSentence   string `json:"fullSentence"`
	Difficulty     string `json:"difficulty"`
	TotalSentences int    `json:"totalSentences"`
}

type checkAnswerRequest struct {
	GameSessionID string `json:"gameSessionId"`
	SentenceID    int    `json:"sentenceId"`
	Answer        string `json:"answer"`
	Attempts      int    `json:"attempts"`
}

type nextSentenceData struct {
	SentenceID   int    `json:"sentenceId"`
	FullSentence string `json:"fullSentence"`
	Difficulty   string `json:"difficulty"`
}

type checkAnswerResponse struct {
	Correct       bool              `json:"correct"`
	CorrectAnswer string            `json:"correctAnswer"`
	Explanation   string            `json:"explanation"`
	NextSentence  *nextSentenceData `json:"nextSentence"`
}

type hintRequestBody struct {
	SentenceID int `json:"sentenceId"`
	HintCursor int `json:"hintCursor"`
}

type hintResponse struct {
	HintText   string `json:"hintText"`
	HintCursor int    `json:"hintCursor"`
	HintLimit  int    `json:"hintLimit"`
}

// FetchNext starts a new session with the service.
func (r *Remote) FetchNext(ctx context.Context) (*game.FetchResult, error) {
	raw, err := r.do(ctx, http.MethodGet, newPath, nil)
	if err != nil {
		return nil, err
	}
	if err := validatePayload("new-sentence", newSentenceSchema, raw); err != nil {
		return nil, err
	}

	var resp newSentenceResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ValidationError{Err: err}
	}
	total := resp.TotalSentences
	if total == 0 {
		total = defaultTotalSentences
	}

	return &game.FetchResult{
		SessionID: resp.GameSessionID,
		Item: game.Item{
			ID:         resp.SentenceID,
			FullForm:   resp.FullSentence,
			Difficulty: game.Difficulty(resp.Difficulty),
		},
		TotalItems: total,
	}, nil
}

// SubmitAnswer sends the answer for server-side grading.
func (r *Remote) SubmitAnswer(ctx context.Context, req SubmitRequest) (*game.SubmitResult, error) {
	body := checkAnswerRequest{
		GameSessionID: req.SessionID,
		SentenceID:    req.ItemID,
		Answer:        req.Answer,
		Attempts:      req.Attempts,
	}
	raw, err := r.do(ctx, http.MethodPost, checkPath, body)
	if err != nil {
		return nil, err
	}
	if err := validatePayload("check-answer", checkAnswerSchema, raw); err != nil {
		return nil, err
	}

	var resp checkAnswerResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ValidationError{Err: err}
	}

	result := &game.SubmitResult{
		Correct:     resp.Correct,
		ShortForm:   resp.CorrectAnswer,
		Explanation: resp.Explanation,
	}
	if resp.NextSentence != nil {
		result.Next = &game.Item{
			ID:         resp.NextSentence.SentenceID,
			FullForm:   resp.NextSentence.FullSentence,
			Difficulty: game.Difficulty(resp.NextSentence.Difficulty),
		}
	}
	return result, nil
}

// RequestHint asks the service for the next hint for a sentence.
func (r *Remote) RequestHint(ctx context.Context, req HintRequest) (*game.HintResult, error) {
	body := hintRequestBody{
		SentenceID: req.ItemID,
		HintCursor: req.Cursor,
	}
	raw, err := r.do(ctx, http.MethodPost, hintPath, body)
	if err != nil {
		return nil, err
	}
	if err := validatePayload("hint", hintSchema, raw); err != nil {
		return nil, err
	}

	var resp hintResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ValidationError{Err: err}
	}
	return &game.HintResult{
		Text:   resp.HintText,
		Cursor: resp.HintCursor,
		Limit:  resp.HintLimit,
	}, nil
}

// do issues one request and returns the raw response body. Transport
// failures map to *UnreachableError, non-2xx statuses to *ServerError.
func (r *Remote) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &UnreachableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServerError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnreachableError{Err: err}
	}
	return raw, nil
}
