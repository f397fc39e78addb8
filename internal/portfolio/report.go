package portfolio

// Status of one sub-write of a document save.
type Status string

const (
	StatusCreated  Status = "created"
	StatusUpdated  Status = "updated"
	StatusFailed   Status = "failed"
	StatusBuffered Status = "buffered"
)

// Outcome describes what happened to one element of the document.
type Outcome struct {
	Resource string `json:"resource"`
	Key      string `json:"key"`
	Status   Status `json:"status"`
	ID       string `json:"id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Report lists every sub-write of a save in the order it was attempted.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

func (r Report) Succeeded() []Outcome {
	return r.filter(func(s Status) bool { return s == StatusCreated || s == StatusUpdated })
}

// Failed returns sub-writes that were not stored, including buffered ones.
func (r Report) Failed() []Outcome {
	return r.filter(func(s Status) bool { return s == StatusFailed || s == StatusBuffered })
}

// OK reports whether every sub-write was stored.
func (r Report) OK() bool {
	return len(r.Failed()) == 0
}

func (r Report) filter(keep func(Status) bool) []Outcome {
	out := make([]Outcome, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if keep(o.Status) {
			out = append(out, o)
		}
	}
	return out
}
