package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskReportsWarmup pre-populates the report caches.
	TaskReportsWarmup = "reports:warmup"
)

// ReportsWarmupPayload scopes a warmup run. An empty Anchor means the
// current IST date.
type ReportsWarmupPayload struct {
	Anchor string `json:"anchor,omitempty"`
	TopN   int    `json:"top_n,omitempty"`
}

// NewReportsWarmupTask constructs an Asynq task.
func NewReportsWarmupTask(payload ReportsWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportsWarmup, data), nil
}
