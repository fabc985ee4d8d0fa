// Package archive records completed coloring runs.
//
// A run captures what was asked (graph fingerprint, strategy, color bound)
// and what came back (found or not, the coloring, timing), so past results
// can be listed and inspected later. The [Store] interface has three
// backends:
//   - memory: single-process servers and tests
//   - file: the CLI, under the user config directory
//   - mongo: multi-instance server deployments
package archive

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("archive: run not found")

// Run is one completed coloring invocation.
type Run struct {
	ID          string         `json:"id" bson:"_id"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	Strategy    string         `json:"strategy" bson:"strategy"`
	Fingerprint string         `json:"fingerprint" bson:"fingerprint"`
	Nodes       int            `json:"nodes" bson:"nodes"`
	Edges       int            `json:"edges" bson:"edges"`
	MaxColors   int            `json:"max_colors" bson:"max_colors"`
	Found       bool           `json:"found" bson:"found"`
	NumColors   int            `json:"num_colors" bson:"num_colors"`
	Duration    time.Duration  `json:"duration" bson:"duration"`
	Coloring    map[string]int `json:"coloring,omitempty" bson:"coloring,omitempty"`
}

// NewRun creates a run with a fresh ID and the current time.
func NewRun() Run {
	return Run{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
}

// Store is the interface for run storage backends.
type Store interface {
	// Put stores a run, overwriting any run with the same ID.
	Put(ctx context.Context, run Run) error

	// Get retrieves a run by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (Run, error)

	// List returns runs ordered newest first, at most limit entries
	// (limit <= 0 means all).
	List(ctx context.Context, limit int) ([]Run, error)

	// Delete removes a run. Deleting a missing run is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
