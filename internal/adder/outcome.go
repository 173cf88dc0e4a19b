package adder

import (
	"github.com/vmunix/arrlist/internal/catalog"
	"github.com/vmunix/arrlist/internal/lists"
)

// Reason explains why an Outcome is not ok.
type Reason string

const (
	ReasonNotFound    Reason = "not_found"
	ReasonExists      Reason = "exists"
	ReasonUnsupported Reason = "unsupported"
	ReasonError       Reason = "error"
)

// StateAdded is the state of a successful outcome.
const StateAdded = "added"

// Outcome is the result of adding one item. OK is true only when the target
// accepted the add; every other terminal state carries a Reason.
type Outcome struct {
	Item   lists.Item      `json:"item"`
	OK     bool            `json:"ok"`
	Reason Reason          `json:"reason,omitempty"`
	Record *catalog.Record `json:"record,omitempty"`
	Detail string          `json:"detail,omitempty"`
}

// State returns "added" or the reason.
func (o Outcome) State() string {
	if o.OK {
		return StateAdded
	}
	return string(o.Reason)
}

// Summary counts outcomes by state.
type Summary struct {
	Added       int `json:"added"`
	Exists      int `json:"exists"`
	NotFound    int `json:"not_found"`
	Unsupported int `json:"unsupported"`
	Failed      int `json:"error"`
}

// Summarize tallies outcomes.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch {
		case o.OK:
			s.Added++
		case o.Reason == ReasonExists:
			s.Exists++
		case o.Reason == ReasonNotFound:
			s.NotFound++
		case o.Reason == ReasonUnsupported:
			s.Unsupported++
		default:
			s.Failed++
		}
	}
	return s
}
