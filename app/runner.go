package app

import (
	"sync"
	"time"

	"github.com/dan13ram/teleport-relayer/models"
	log "github.com/sirupsen/logrus"
)

type Runner interface {
	Run()
	Status() models.RunnerStatus
}

// RunnerService calls Run on its runner every interval until stopped.
type RunnerService struct {
	name     string
	runner   Runner
	wg       *sync.WaitGroup
	stop     chan bool
	interval time.Duration

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func (x *RunnerService) Start() {
	log.Info("[", x.name, "] Starting service")
	stop := false
	for !stop {
		log.Debug("[", x.name, "] Starting run")

		x.runner.Run()

		x.UpdateHealth()

		log.Debug("[", x.name, "] Finished run, sleeping for ", x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Info("[", x.name, "] Stopped service")
		case <-time.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

func (x *RunnerService) UpdateHealth() {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	lastSyncTime := time.Now()
	status := x.runner.Status()

	x.health = models.ServiceHealth{
		Name:         x.name,
		LastSyncTime: lastSyncTime,
		NextSyncTime: lastSyncTime.Add(x.interval),
		BlockNumber:  status.BlockNumber,
		Healthy:      true,
	}
}

func (x *RunnerService) Stop() {
	log.Debug("[", x.name, "] Stopping service")
	x.stop <- true
}

func NewRunnerService(
	name string,
	runner Runner,
	wg *sync.WaitGroup,
	interval time.Duration,
) *RunnerService {
	if name == "" || runner == nil || interval <= 0 {
		log.Error("[RUNNER] Invalid parameters for runner service: ", name)
		return nil
	}

	x := &RunnerService{
		name:     name,
		runner:   runner,
		wg:       wg,
		stop:     make(chan bool, 1),
		interval: interval,
	}

	x.UpdateHealth()

	return x
}
