// Package job contains scheduled maintenance tasks run by the web server's
// cron scheduler.
package job

import (
	"list-ui/database"
	"list-ui/logger"
)

// CheckpointJob flushes the SQLite WAL into the main database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
