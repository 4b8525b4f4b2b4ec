package job

import (
	"os"

	"list-ui/logger"
)

// ClearLogsJob rotates the application log: the current file is appended to
// its .prev sibling and truncated.
type ClearLogsJob struct{}

func NewClearLogsJob() *ClearLogsJob {
	return new(ClearLogsJob)
}

// Run implements cron.Job.
func (j *ClearLogsJob) Run() {
	logPath := logger.GetLogPath()
	prevPath := logPath + ".prev"

	prevFile, err := os.OpenFile(prevPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}
	defer prevFile.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}
	if _, err := prevFile.Write(data); err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}

	if err := os.Truncate(logPath, 0); err != nil {
		logger.Warning("clear logs job err:", err)
	}
}
