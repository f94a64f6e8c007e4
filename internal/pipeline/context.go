package pipeline

import (
	"github.com/google/uuid"

	"github.com/ginjaninja78/ifsc-enricher/internal/types"
)

// RunContext holds all mutable state of one enrichment pass. A new one is
// created for every run and nothing in it outlives the process.
type RunContext struct {
	// RunID identifies the pass in log output.
	RunID string

	// Validity caches Validate results per code as read from the sheet.
	Validity map[string]bool

	// Details caches successful lookups per code. Failed lookups are never
	// cached.
	Details map[string]types.Details

	// History lists every resolved row in processing order.
	History []types.HistoryEntry

	Processed    int
	Valid        int
	Invalid      int
	LookupFailed int
}

// NewRunContext returns an empty context with a fresh run ID.
func NewRunContext() *RunContext {
	return &RunContext{
		RunID:    uuid.NewString(),
		Validity: make(map[string]bool),
		Details:  make(map[string]types.Details),
	}
}
