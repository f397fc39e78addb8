package buffer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Item is one failed portfolio sub-write waiting to be replayed. Entity
// names the resource kind and Data holds its JSON record.
type Item struct {
	ID        string          `json:"id"`
	Entity    string          `json:"entity"`
	Data      json.RawMessage `json:"data"`
	Retries   int             `json:"retries"`
	LastError string          `json:"last_error,omitempty"`
	Timestamp time.Time       `json:"timestamp"`

	bucketKey []byte
}

func (i *Item) normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
}
