package models

// QuerySpecification identifies a single query under evaluation. It is
// owned by the harness driving the run; the collector only reads Query.
type QuerySpecification struct {
	QueryID string `json:"query_id"`
	Query   string `json:"query"`
}

// AgentMessage is one step of an agent transcript.
type AgentMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AgentResponse is the raw agent output handed over for judging. Agents
// either report a final answer directly or a multi-step transcript from
// which the terminal answer has to be extracted.
type AgentResponse struct {
	FinalAnswer string         `json:"final_answer,omitempty"`
	Messages    []AgentMessage `json:"messages,omitempty"`
}

// EvaluationResult is the judge's output for one query-answer pair.
type EvaluationResult struct {
	Evaluation string `json:"evaluation"`
	IsSolved   bool   `json:"is_solved"`
}

// Input message

type MeasurementEvent struct {
	EventID  string        `json:"event_id"`
	QueryID  string        `json:"query_id"`
	Query    string        `json:"query"`
	Response AgentResponse `json:"response"`
}

// QuerySpec builds the query specification carried by the event.
func (e MeasurementEvent) QuerySpec() QuerySpecification {
	return QuerySpecification{
		QueryID: e.QueryID,
		Query:   e.Query,
	}
}
