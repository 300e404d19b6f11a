package domain

import "github.com/google/uuid"

// Stream names shared with upstream producers (dispatch backend).
const (
	StreamPlanRequest = "stream:plan:request"
	StreamPlanDone    = "stream:plan:done"
)

// PlanRequestEvent is an asynchronous planning request consumed from the
// request stream. It carries the same structured parameters as the HTTP
// surface; free-text interpretation happens upstream.
type PlanRequestEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	Provinces []string  `json:"provinces"`
	District  string    `json:"district,omitempty"`
	SiteLimit int       `json:"site_limit,omitempty"`
	Days      int       `json:"days"`
	Start     *Point    `json:"start,omitempty"`
}

// PlanDoneEvent is published once an asynchronous request has been
// planned (or has failed).
type PlanDoneEvent struct {
	RequestID uuid.UUID     `json:"request_id"`
	Plan      *MultiDayPlan `json:"plan,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// StreamMessage is a raw message read from a redis stream.
type StreamMessage struct {
	ID   string
	Data string
}
