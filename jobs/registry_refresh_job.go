// File: /jobs/registry_refresh_job.go
package jobs

import (
	"time"

	"github.com/sirupsen/logrus"

	"volunteerhub-api/registry"
)

// RegistryRefreshJob periodically resyncs the in-memory opportunity snapshot
// with the backing store, picking up rows changed outside this process.
type RegistryRefreshJob struct {
	registry *registry.Registry
	log      *logrus.Logger
	ticker   *time.Ticker
	done     chan bool
}

// NewRegistryRefreshJob creates a new refresh job
func NewRegistryRefreshJob(reg *registry.Registry, interval time.Duration, log *logrus.Logger) *RegistryRefreshJob {
	return &RegistryRefreshJob{
		registry: reg,
		log:      log,
		ticker:   time.NewTicker(interval),
		done:     make(chan bool),
	}
}

// Start begins the refresh job
func (j *RegistryRefreshJob) Start() {
	j.log.Info("registry refresh job started")

	go func() {
		// Run immediately on start
		j.refresh()

		for {
			select {
			case <-j.ticker.C:
				j.refresh()
			case <-j.done:
				j.log.Info("registry refresh job stopped")
				return
			}
		}
	}()
}

// Stop stops the refresh job
func (j *RegistryRefreshJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *RegistryRefreshJob) refresh() {
	if err := j.registry.Refresh(); err != nil {
		j.log.WithError(err).Warn("registry refresh job: reload failed, keeping previous snapshot")
	}
}
