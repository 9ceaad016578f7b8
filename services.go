package main

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/teleport-relayer/api"
	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/batch"
	"github.com/dan13ram/teleport-relayer/eth"
	"github.com/dan13ram/teleport-relayer/models"
	"github.com/dan13ram/teleport-relayer/notify"
	"github.com/dan13ram/teleport-relayer/proof"
	"github.com/dan13ram/teleport-relayer/teleport"
)

// Relayer holds every running service of the process.
type Relayer struct {
	wg       *sync.WaitGroup
	services []app.Service
	closers  []func()
}

// lastHealth returns the stored health of a service, or the zero value when
// there is none or reading it is disabled.
func lastHealth(healths map[string]models.ServiceHealth, name string) models.ServiceHealth {
	if health, ok := healths[name]; ok {
		return health
	}
	return models.ServiceHealth{}
}

// createNotifier fans transitions out to websocket subscribers and to the
// configured brokers.
func createNotifier(broadcaster *notify.Broadcaster) (notify.Notifier, []func()) {
	notifiers := notify.Multi{broadcaster}
	var closers []func()

	if app.Config.Redis.Enabled {
		redisNotifier, err := notify.NewRedisNotifier(app.Config.Redis.URL, app.Config.Redis.Channel)
		if err != nil {
			log.Fatal("[MAIN] Error initializing redis notifier: ", err)
		}
		notifiers = append(notifiers, redisNotifier)
		closers = append(closers, func() {
			if err := redisNotifier.Close(); err != nil {
				log.Error("[MAIN] Error closing redis notifier: ", err)
			}
		})
	}

	if app.Config.Kafka.Enabled {
		kafkaNotifier, err := notify.NewKafkaNotifier(app.Config.Kafka.Brokers, app.Config.Kafka.Topic)
		if err != nil {
			log.Fatal("[MAIN] Error initializing kafka notifier: ", err)
		}
		notifiers = append(notifiers, kafkaNotifier)
		closers = append(closers, kafkaNotifier.Close)
	}

	return notifiers, closers
}

func NewRelayer() *Relayer {
	signer, err := app.CreateRelayerSigner()
	if err != nil {
		log.Fatal("[MAIN] Error creating relayer signer: ", err)
	}

	healthcheck := app.NewHealthCheck(signer.EthAddress().Hex())

	healths := map[string]models.ServiceHealth{}
	if app.Config.HealthCheck.ReadLastHealth {
		if health, err := healthcheck.FindLastHealth(); err == nil {
			healths = app.ServiceHealthMap(health)
		} else {
			log.Warn("[MAIN] Error reading last health: ", err)
		}
	}

	broadcaster := notify.NewBroadcaster()
	notifier, closers := createNotifier(broadcaster)

	store := teleport.NewStore(notifier)
	proofs, err := proof.NewService(app.Config.Proof.CacheSize)
	if err != nil {
		log.Fatal("[MAIN] Error creating proof service: ", err)
	}

	wg := &sync.WaitGroup{}
	var services []app.Service

	for _, chain := range app.Config.SourceChains {
		monitorName := fmt.Sprintf("%s %s", eth.TeleportMonitorName, chain.Name)
		services = append(services,
			eth.NewTeleportMonitor(chain, wg, lastHealth(healths, monitorName), store),
			batch.NewBuilder(chain, wg),
		)
	}

	services = append(services,
		eth.NewRootPublisher(wg, signer, store, notifier),
		eth.NewClaimMonitor(wg, lastHealth(healths, eth.ClaimMonitorName), store),
		eth.NewTxWatcher(wg, store),
		api.NewAPIService(wg, proofs, store, broadcaster, healthcheck.Healthy),
	)

	healthcheck.SetServices(services)
	services = append(services, app.NewHealthService(healthcheck, wg))

	wg.Add(len(services))

	return &Relayer{
		wg:       wg,
		services: services,
		closers:  closers,
	}
}

func (r *Relayer) Start() {
	for _, service := range r.services {
		go service.Start()
	}
	log.Info("[MAIN] Started ", len(r.services), " services")
}

func (r *Relayer) Stop() {
	for _, service := range r.services {
		service.Stop()
	}
	r.wg.Wait()
	for _, closer := range r.closers {
		closer()
	}
}
