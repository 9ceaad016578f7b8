package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/teleport-relayer/models"
)

func readConfigFromENV(envFile string) bool {
	if envFile == "" {
		log.Debug("[ENV] No env file provided")
	} else {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading env file: ", err.Error())
		}
	}

	// mongodb
	envString("MONGODB_URI", &Config.MongoDB.URI)
	envString("MONGODB_DATABASE", &Config.MongoDB.Database)
	envInt64("MONGODB_TIMEOUT_MS", &Config.MongoDB.TimeoutMillis)

	// destination
	envString("DESTINATION_CHAIN_ID", &Config.Destination.ChainID)
	envString("DESTINATION_RPC_URL", &Config.Destination.RPCURL)
	envInt64("DESTINATION_RPC_TIMEOUT_MS", &Config.Destination.RPCTimeoutMillis)
	envInt64("DESTINATION_CONFIRMATIONS", &Config.Destination.Confirmations)
	envInt64("DESTINATION_START_BLOCK_NUMBER", &Config.Destination.StartBlockNumber)
	envString("DESTINATION_ROOT_REGISTRY_ADDRESS", &Config.Destination.RootRegistryAddress)
	envString("DESTINATION_TELEPORTER_ADDRESS", &Config.Destination.TeleporterAddress)
	envString("DESTINATION_MNEMONIC", &Config.Destination.Mnemonic)
	envString("DESTINATION_GCP_KMS_KEY_NAME", &Config.Destination.GcpKmsKeyName)
	if value := os.Getenv("DESTINATION_GAS_LIMIT"); value != "" {
		gasLimit, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing DESTINATION_GAS_LIMIT: ", err.Error())
		} else {
			Config.Destination.GasLimit = gasLimit
		}
	}

	// source chains are declared in the config file, env only overrides them
	for i := range Config.SourceChains {
		prefix := sourceChainEnvPrefix(Config.SourceChains[i])
		envString(prefix+"RPC_URL", &Config.SourceChains[i].RPCURL)
		envInt64(prefix+"RPC_TIMEOUT_MS", &Config.SourceChains[i].RPCTimeoutMillis)
		envInt64(prefix+"CONFIRMATIONS", &Config.SourceChains[i].Confirmations)
		envInt64(prefix+"START_BLOCK_NUMBER", &Config.SourceChains[i].StartBlockNumber)
		envString(prefix+"TELEPORTER_ADDRESS", &Config.SourceChains[i].TeleporterAddress)
	}

	// commitment
	if value := os.Getenv("COMMITMENT_BATCH_SIZE_THRESHOLD"); value != "" {
		threshold, err := strconv.Atoi(value)
		if err != nil {
			log.Warn("[ENV] Error parsing COMMITMENT_BATCH_SIZE_THRESHOLD: ", err.Error())
		} else {
			Config.Commitment.BatchSizeThreshold = threshold
		}
	}
	envInt64("COMMITMENT_MAX_LATENCY_MS", &Config.Commitment.MaxLatencyMillis)

	// proof
	if value := os.Getenv("PROOF_CACHE_SIZE"); value != "" {
		size, err := strconv.Atoi(value)
		if err != nil {
			log.Warn("[ENV] Error parsing PROOF_CACHE_SIZE: ", err.Error())
		} else {
			Config.Proof.CacheSize = size
		}
	}

	// services
	envService("TELEPORT_MONITOR", &Config.TeleportMonitor)
	envService("COMMITMENT_BUILDER", &Config.CommitmentBuilder)
	envService("CLAIM_MONITOR", &Config.ClaimMonitor)

	envBool("ROOT_PUBLISHER_ENABLED", &Config.RootPublisher.Enabled)
	envInt64("ROOT_PUBLISHER_INTERVAL_MS", &Config.RootPublisher.IntervalMillis)
	envInt64("ROOT_PUBLISHER_MAX_ATTEMPTS", &Config.RootPublisher.MaxAttempts)
	envInt64("ROOT_PUBLISHER_INITIAL_BACKOFF_MS", &Config.RootPublisher.InitialBackoffMillis)
	envInt64("ROOT_PUBLISHER_MAX_BACKOFF_MS", &Config.RootPublisher.MaxBackoffMillis)
	envInt64("ROOT_PUBLISHER_SUBMIT_TIMEOUT_MS", &Config.RootPublisher.SubmitTimeoutMillis)

	envBool("TX_WATCHER_ENABLED", &Config.TxWatcher.Enabled)
	envInt64("TX_WATCHER_INTERVAL_MS", &Config.TxWatcher.IntervalMillis)
	envInt64("TX_WATCHER_BURN_TIMEOUT_MS", &Config.TxWatcher.BurnTimeoutMillis)
	envInt64("TX_WATCHER_CLAIM_TIMEOUT_MS", &Config.TxWatcher.ClaimTimeoutMillis)

	// api
	envBool("API_ENABLED", &Config.API.Enabled)
	envString("API_LISTEN_ADDRESS", &Config.API.ListenAddress)
	envInt64("API_TIMEOUT_MS", &Config.API.TimeoutMillis)

	// notifications
	envBool("REDIS_ENABLED", &Config.Redis.Enabled)
	envString("REDIS_URL", &Config.Redis.URL)
	envString("REDIS_CHANNEL", &Config.Redis.Channel)
	envBool("KAFKA_ENABLED", &Config.Kafka.Enabled)
	envString("KAFKA_BROKERS", &Config.Kafka.Brokers)
	envString("KAFKA_TOPIC", &Config.Kafka.Topic)

	// health check
	envInt64("HEALTH_CHECK_INTERVAL_MS", &Config.HealthCheck.IntervalMillis)
	envBool("HEALTH_CHECK_READ_LAST_HEALTH", &Config.HealthCheck.ReadLastHealth)

	// logging
	envString("LOG_LEVEL", &Config.Logger.Level)

	// google secret manager
	envBool("GOOGLE_SECRET_MANAGER_ENABLED", &Config.GoogleSecretManager.Enabled)
	envString("GOOGLE_PROJECT_ID", &Config.GoogleSecretManager.ProjectId)
	envString("GOOGLE_MONGO_SECRET_NAME", &Config.GoogleSecretManager.MongoSecretName)
	envString("GOOGLE_MNEMONIC_SECRET_NAME", &Config.GoogleSecretManager.MnemonicSecretName)
	envString("GOOGLE_REDIS_SECRET_NAME", &Config.GoogleSecretManager.RedisSecretName)

	log.Debug("[ENV] Config read from env")
	return true
}

func sourceChainEnvPrefix(chain models.SourceChainConfig) string {
	key := chain.Name
	if key == "" {
		key = chain.ChainID
	}
	key = strings.ToUpper(strings.NewReplacer("-", "_", " ", "_", ".", "_").Replace(key))
	return fmt.Sprintf("SOURCE_%s_", key)
}

func envString(key string, target *string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

func envInt64(key string, target *int64) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Warn("[ENV] Error parsing ", key, ": ", err.Error())
		return
	}
	*target = parsed
}

func envBool(key string, target *bool) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn("[ENV] Error parsing ", key, ": ", err.Error())
		return
	}
	*target = parsed
}

func envService(prefix string, target *models.ServiceConfig) {
	envBool(prefix+"_ENABLED", &target.Enabled)
	envInt64(prefix+"_INTERVAL_MS", &target.IntervalMillis)
}
