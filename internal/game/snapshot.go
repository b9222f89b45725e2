package game

import "encoding/json"

// Snapshot is the persisted form of a session. It is written in full
// after every mutating transition, alongside a separate date stamp.
// Hint progress is intentionally not part of it: a restored session
// re-learns the hint limit from the provider.
type Snapshot struct {
	SessionID     string      `json:"sessionId"`
	CurrentItemID int         `json:"currentItemId"`
	CurrentItem   Item        `json:"currentItem"`
	TotalItems    int         `json:"totalItems"`
	Attempts      map[int]int `json:"attempts"`
}

// Snapshot captures the restorable session state.
func (s *State) Snapshot() Snapshot {
	attempts := make(map[int]int, len(s.Attempts))
	for k, v := range s.Attempts {
		attempts[k] = v
	}
	return Snapshot{
		SessionID:     s.SessionID,
		CurrentItemID: s.CurrentItem.ID,
		CurrentItem:   s.CurrentItem,
		TotalItems:    s.TotalItems,
		Attempts:      attempts,
	}
}

// MarshalSnapshot encodes the current session state as JSON.
func (s *State) MarshalSnapshot() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

// Restore rebuilds a session from a persisted snapshot. It returns nil
// when the snapshot is unusable: saved on a different calendar day,
// missing its session identifier, or missing the current sentence.
func Restore(data []byte, savedDate, today string) *State {
	if savedDate != today || len(data) == 0 {
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil
	}
	if snap.SessionID == "" || snap.CurrentItem.FullForm == "" {
		return nil
	}

	if snap.Attempts == nil {
		snap.Attempts = make(map[int]int)
	}
	if snap.CurrentItem.ID == 0 {
		snap.CurrentItem.ID = snap.CurrentItemID
	}
	if _, ok := snap.Attempts[snap.CurrentItem.ID]; !ok {
		snap.Attempts[snap.CurrentItem.ID] = 0
	}

	return &State{
		Phase:       PhasePlaying,
		SessionID:   snap.SessionID,
		TotalItems:  snap.TotalItems,
		CurrentItem: snap.CurrentItem,
		Attempts:    snap.Attempts,
		CreatedOn:   savedDate,
	}
}
