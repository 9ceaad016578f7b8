package app

import (
	"os"
	"strings"

	"github.com/dan13ram/teleport-relayer/models"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var (
	Config models.Config
)

const (
	DefaultMongoTimeoutMillis   = 2000
	DefaultRPCTimeoutMillis     = 5000
	DefaultIntervalMillis       = 5000
	DefaultBatchSizeThreshold   = 64
	DefaultMaxLatencyMillis     = 60000
	DefaultProofCacheSize       = 256
	DefaultMaxAttempts          = 5
	DefaultInitialBackoffMillis = 2000
	DefaultMaxBackoffMillis     = 60000
	DefaultSubmitTimeoutMillis  = 300000
	DefaultBurnTimeoutMillis    = 1800000
	DefaultClaimTimeoutMillis   = 1800000
	DefaultAPIListenAddress     = ":8080"
	DefaultAPITimeoutMillis     = 5000
	DefaultRedisChannel         = "teleport-transitions"
	DefaultKafkaTopic           = "teleport-transitions"
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")

	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readKeysFromGSM()

	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}

	log.Debug("[CONFIG] Reading config file: ", configFile)
	yamlFile, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
		return false
	}

	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
		return false
	}

	log.Debug("[CONFIG] Config loaded from file: ", configFile)
	return true
}

func applyDefaults() {
	if Config.MongoDB.TimeoutMillis == 0 {
		Config.MongoDB.TimeoutMillis = DefaultMongoTimeoutMillis
	}
	if Config.Destination.RPCTimeoutMillis == 0 {
		Config.Destination.RPCTimeoutMillis = DefaultRPCTimeoutMillis
	}
	for i := range Config.SourceChains {
		if Config.SourceChains[i].RPCTimeoutMillis == 0 {
			Config.SourceChains[i].RPCTimeoutMillis = DefaultRPCTimeoutMillis
		}
		if Config.SourceChains[i].Name == "" {
			Config.SourceChains[i].Name = Config.SourceChains[i].ChainID
		}
	}
	if Config.Commitment.BatchSizeThreshold == 0 {
		Config.Commitment.BatchSizeThreshold = DefaultBatchSizeThreshold
	}
	if Config.Commitment.MaxLatencyMillis == 0 {
		Config.Commitment.MaxLatencyMillis = DefaultMaxLatencyMillis
	}
	if Config.Proof.CacheSize == 0 {
		Config.Proof.CacheSize = DefaultProofCacheSize
	}
	if Config.RootPublisher.MaxAttempts == 0 {
		Config.RootPublisher.MaxAttempts = DefaultMaxAttempts
	}
	if Config.RootPublisher.InitialBackoffMillis == 0 {
		Config.RootPublisher.InitialBackoffMillis = DefaultInitialBackoffMillis
	}
	if Config.RootPublisher.MaxBackoffMillis == 0 {
		Config.RootPublisher.MaxBackoffMillis = DefaultMaxBackoffMillis
	}
	if Config.RootPublisher.SubmitTimeoutMillis == 0 {
		Config.RootPublisher.SubmitTimeoutMillis = DefaultSubmitTimeoutMillis
	}
	if Config.TxWatcher.BurnTimeoutMillis == 0 {
		Config.TxWatcher.BurnTimeoutMillis = DefaultBurnTimeoutMillis
	}
	if Config.TxWatcher.ClaimTimeoutMillis == 0 {
		Config.TxWatcher.ClaimTimeoutMillis = DefaultClaimTimeoutMillis
	}
	if Config.API.ListenAddress == "" {
		Config.API.ListenAddress = DefaultAPIListenAddress
	}
	if Config.API.TimeoutMillis == 0 {
		Config.API.TimeoutMillis = DefaultAPITimeoutMillis
	}
	if Config.Redis.Channel == "" {
		Config.Redis.Channel = DefaultRedisChannel
	}
	if Config.Kafka.Topic == "" {
		Config.Kafka.Topic = DefaultKafkaTopic
	}
	if Config.Logger.Level == "" {
		Config.Logger.Level = "info"
	}

	services := []*int64{
		&Config.TeleportMonitor.IntervalMillis,
		&Config.CommitmentBuilder.IntervalMillis,
		&Config.RootPublisher.IntervalMillis,
		&Config.ClaimMonitor.IntervalMillis,
		&Config.TxWatcher.IntervalMillis,
		&Config.HealthCheck.IntervalMillis,
	}
	for _, interval := range services {
		if *interval == 0 {
			*interval = DefaultIntervalMillis
		}
	}
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")

	applyDefaults()

	// mongodb
	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}

	// destination
	if Config.Destination.RPCURL == "" {
		log.Fatal("[CONFIG] Destination.RPCURL is required")
	}
	if Config.Destination.ChainID == "" {
		log.Fatal("[CONFIG] Destination.ChainID is required")
	}
	if Config.Destination.Confirmations < 0 {
		log.Fatal("[CONFIG] Destination.Confirmations cannot be negative")
	}
	if Config.Destination.RootRegistryAddress == "" {
		log.Fatal("[CONFIG] Destination.RootRegistryAddress is required")
	}
	if (Config.ClaimMonitor.Enabled || Config.TxWatcher.Enabled) && Config.Destination.TeleporterAddress == "" {
		log.Fatal("[CONFIG] Destination.TeleporterAddress is required when claim monitor or tx watcher is enabled")
	}
	if Config.RootPublisher.Enabled && Config.Destination.Mnemonic == "" && Config.Destination.GcpKmsKeyName == "" {
		log.Fatal("[CONFIG] Destination.Mnemonic or Destination.GcpKmsKeyName is required")
	}

	// source chains
	if len(Config.SourceChains) == 0 {
		log.Fatal("[CONFIG] At least one source chain is required")
	}
	seen := make(map[string]bool)
	for i, chain := range Config.SourceChains {
		if chain.ChainID == "" {
			log.Fatalf("[CONFIG] SourceChains[%d].ChainID is required", i)
		}
		if seen[chain.ChainID] {
			log.Fatalf("[CONFIG] SourceChains[%d].ChainID %s is duplicated", i, chain.ChainID)
		}
		seen[chain.ChainID] = true
		if strings.Contains(chain.ChainID, ":") {
			log.Fatalf("[CONFIG] SourceChains[%d].ChainID cannot contain ':'", i)
		}
		if chain.RPCURL == "" {
			log.Fatalf("[CONFIG] SourceChains[%d].RPCURL is required", i)
		}
		if chain.TeleporterAddress == "" {
			log.Fatalf("[CONFIG] SourceChains[%d].TeleporterAddress is required", i)
		}
		if chain.Confirmations < 0 {
			log.Fatalf("[CONFIG] SourceChains[%d].Confirmations cannot be negative", i)
		}
	}

	// commitment
	if Config.Commitment.BatchSizeThreshold < 0 {
		log.Fatal("[CONFIG] Commitment.BatchSizeThreshold must be positive")
	}
	if Config.Commitment.MaxLatencyMillis < 0 {
		log.Fatal("[CONFIG] Commitment.MaxLatencyMillis must be positive")
	}

	// root publisher
	if Config.RootPublisher.MaxBackoffMillis < Config.RootPublisher.InitialBackoffMillis {
		log.Fatal("[CONFIG] RootPublisher.MaxBackoffMillis must be at least InitialBackoffMillis")
	}

	// notifications
	if Config.Redis.Enabled && Config.Redis.URL == "" {
		log.Fatal("[CONFIG] Redis.URL is required when redis is enabled")
	}
	if Config.Kafka.Enabled && Config.Kafka.Brokers == "" {
		log.Fatal("[CONFIG] Kafka.Brokers is required when kafka is enabled")
	}

	log.Debug("[CONFIG] Config validated")
}
