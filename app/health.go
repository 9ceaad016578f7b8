package app

import (
	"os"
	"sync"
	"time"

	"github.com/dan13ram/teleport-relayer/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

const HealthServiceName = "HEALTH"

// HealthCheckRunner persists the health of every running service so that a
// restarted relayer can resume from the last recorded checkpoints.
type HealthCheckRunner struct {
	relayerAddress string
	hostname       string

	mu       sync.RWMutex
	services []Service
}

func (x *HealthCheckRunner) Run() {
	x.PostHealth()
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

func (x *HealthCheckRunner) filter() bson.M {
	return bson.M{
		"relayer_address": x.relayerAddress,
		"hostname":        x.hostname,
	}
}

func (x *HealthCheckRunner) FindLastHealth() (models.Health, error) {
	var health models.Health
	err := DB.FindOne(models.CollectionHealthChecks, x.filter(), &health)
	return health, err
}

func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		health := service.Health()
		if health.Name == EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

// Healthy reports whether every registered service reported healthy on its last run.
func (x *HealthCheckRunner) Healthy() bool {
	for _, health := range x.ServiceHealths() {
		if !health.Healthy {
			return false
		}
	}
	return true
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	serviceHealths := x.ServiceHealths()
	healthy := true
	for _, health := range serviceHealths {
		healthy = healthy && health.Healthy
	}

	onInsert := bson.M{
		"relayer_address": x.relayerAddress,
		"hostname":        x.hostname,
		"created_at":      time.Now(),
	}

	onUpdate := bson.M{
		"healthy":         healthy,
		"service_healths": serviceHealths,
		"updated_at":      time.Now(),
	}

	update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

	_, err := DB.UpsertOne(models.CollectionHealthChecks, x.filter(), update)
	if err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Debug("[HEALTH] Posted health")
	return true
}

func (x *HealthCheckRunner) SetServices(services []Service) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.services = services
}

func NewHealthCheck(relayerAddress string) *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health")

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	x := &HealthCheckRunner{
		relayerAddress: relayerAddress,
		hostname:       hostname,
	}

	log.Info("[HEALTH] Initialized health")
	return x
}

func NewHealthService(x *HealthCheckRunner, wg *sync.WaitGroup) *RunnerService {
	return NewRunnerService(HealthServiceName, x, wg, time.Duration(Config.HealthCheck.IntervalMillis)*time.Millisecond)
}

// ServiceHealthMap indexes the service healths of a stored health document by service name.
func ServiceHealthMap(health models.Health) map[string]models.ServiceHealth {
	healths := make(map[string]models.ServiceHealth, len(health.ServiceHealths))
	for _, serviceHealth := range health.ServiceHealths {
		healths[serviceHealth.Name] = serviceHealth
	}
	return healths
}
