package jobs

import "fmt"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fileCleanupJob *FileCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(fileCleanupJob *FileCleanupJob) *JobManager {
	return &JobManager{
		fileCleanupJob: fileCleanupJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fileCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start file cleanup job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fileCleanupJob.Stop()
}
