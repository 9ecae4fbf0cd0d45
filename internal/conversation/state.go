package conversation

import "clinic-assistant/internal/model"

// Sentinels written by the query node when the schema cannot satisfy a
// request. Kept exactly as the assistant's prompts reference them.
const (
	QueryNotAvailable = "Not Available"
	NoDataAvailable   = "No data available for this request."
)

// State is the mutable record threaded through one conversation's workflow.
// It is persisted per thread id by a Store and restored on the next turn.
type State struct {
	Messages []model.Turn `json:"messages"`

	// Category is the last-computed route label.
	Category string `json:"category,omitempty"`

	// SQLQuery / SQLResult hold the last generated query and its textual
	// result. QueryError records an execution fault distinctly from an
	// empty result.
	SQLQuery   string `json:"sql_query,omitempty"`
	SQLResult  string `json:"sql_result,omitempty"`
	QueryError string `json:"query_error,omitempty"`

	// Answer is the final synthesized answer of the last turn.
	Answer string `json:"answer,omitempty"`
}

// Delta is a partial state update produced by a workflow node. Nodes never
// write State directly; Apply is the single reducer that merges deltas.
type Delta struct {
	AppendTurns []model.Turn

	Category   string
	SQLQuery   string
	SQLResult  string
	QueryError string
	Answer     string
}

// Apply merges a delta into the state. Turns are append-only; scalar fields
// overwrite only when the delta carries a value.
func (s *State) Apply(d Delta) {
	s.Messages = append(s.Messages, d.AppendTurns...)

	if d.Category != "" {
		s.Category = d.Category
	}
	if d.SQLQuery != "" {
		s.SQLQuery = d.SQLQuery
	}
	if d.SQLResult != "" {
		s.SQLResult = d.SQLResult
	}
	if d.QueryError != "" {
		s.QueryError = d.QueryError
	}
	if d.Answer != "" {
		s.Answer = d.Answer
	}
}

// LastUserMessage returns the most recent user-authored turn within the last
// `window` turns. Older turns and intervening assistant turns are ignored.
func (s *State) LastUserMessage(window int) (string, error) {
	msgs := s.Messages
	if window > 0 && len(msgs) > window {
		msgs = msgs[len(msgs)-window:]
	}
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == model.RoleUser {
			return msgs[i].Content, nil
		}
	}
	return "", ErrNoUserMessage
}

// LastAssistantMessage returns the content of the most recent assistant turn.
func (s *State) LastAssistantMessage() (string, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == model.RoleAssistant {
			return s.Messages[i].Content, true
		}
	}
	return "", false
}

// Clone returns a deep copy so stored checkpoints never alias a state that
// is still being mutated.
func (s *State) Clone() *State {
	cp := *s
	cp.Messages = make([]model.Turn, len(s.Messages))
	copy(cp.Messages, s.Messages)
	return &cp
}
