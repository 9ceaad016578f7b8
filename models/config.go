package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	API                 APIConfig                 `yaml:"api" json:"api"`
	Redis               RedisConfig               `yaml:"redis" json:"redis"`
	Kafka               KafkaConfig               `yaml:"kafka" json:"kafka"`
	Destination         DestinationConfig         `yaml:"destination" json:"destination"`
	SourceChains        []SourceChainConfig       `yaml:"source_chains" json:"source_chains"`
	Commitment          CommitmentConfig          `yaml:"commitment" json:"commitment"`
	Proof               ProofConfig               `yaml:"proof" json:"proof"`
	TeleportMonitor     ServiceConfig             `yaml:"teleport_monitor" json:"teleport_monitor"`
	CommitmentBuilder   ServiceConfig             `yaml:"commitment_builder" json:"commitment_builder"`
	RootPublisher       RootPublisherConfig       `yaml:"root_publisher" json:"root_publisher"`
	ClaimMonitor        ServiceConfig             `yaml:"claim_monitor" json:"claim_monitor"`
	TxWatcher           TxWatcherConfig           `yaml:"tx_watcher" json:"tx_watcher"`
}

type GoogleSecretManagerConfig struct {
	Enabled            bool   `yaml:"enabled" json:"enabled"`
	ProjectId          string `yaml:"project_id" json:"project_id"`
	MongoSecretName    string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	MnemonicSecretName string `yaml:"mnemonic_secret_name" json:"mnemonic_secret_name"`
	RedisSecretName    string `yaml:"redis_secret_name" json:"redis_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	ReadLastHealth bool  `yaml:"read_last_health" json:"read_last_health"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type APIConfig struct {
	Enabled       bool   `yaml:"enabled" json:"enabled"`
	ListenAddress string `yaml:"listen_address" json:"listen_address"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type RedisConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	URL     string `yaml:"url" json:"url"`
	Channel string `yaml:"channel" json:"channel"`
}

type KafkaConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Brokers string `yaml:"brokers" json:"brokers"`
	Topic   string `yaml:"topic" json:"topic"`
}

type DestinationConfig struct {
	ChainID             string `yaml:"chain_id" json:"chain_id"`
	RPCURL              string `yaml:"rpc_url" json:"rpc_url"`
	RPCTimeoutMillis    int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	Confirmations       int64  `yaml:"confirmations" json:"confirmations"`
	StartBlockNumber    int64  `yaml:"start_block_number" json:"start_block_number"`
	RootRegistryAddress string `yaml:"root_registry_address" json:"root_registry_address"`
	TeleporterAddress   string `yaml:"teleporter_address" json:"teleporter_address"`
	Mnemonic            string `yaml:"mnemonic" json:"mnemonic"`
	GcpKmsKeyName       string `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
	GasLimit            uint64 `yaml:"gas_limit" json:"gas_limit"`
}

type SourceChainConfig struct {
	Name              string `yaml:"name" json:"name"`
	ChainID           string `yaml:"chain_id" json:"chain_id"`
	RPCURL            string `yaml:"rpc_url" json:"rpc_url"`
	RPCTimeoutMillis  int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	Confirmations     int64  `yaml:"confirmations" json:"confirmations"`
	StartBlockNumber  int64  `yaml:"start_block_number" json:"start_block_number"`
	TeleporterAddress string `yaml:"teleporter_address" json:"teleporter_address"`
}

type CommitmentConfig struct {
	BatchSizeThreshold int   `yaml:"batch_size_threshold" json:"batch_size_threshold"`
	MaxLatencyMillis   int64 `yaml:"max_latency_ms" json:"max_latency_ms"`
}

type ProofConfig struct {
	CacheSize int `yaml:"cache_size" json:"cache_size"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type RootPublisherConfig struct {
	Enabled              bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis       int64 `yaml:"interval_ms" json:"interval_ms"`
	MaxAttempts          int64 `yaml:"max_attempts" json:"max_attempts"`
	InitialBackoffMillis int64 `yaml:"initial_backoff_ms" json:"initial_backoff_ms"`
	MaxBackoffMillis     int64 `yaml:"max_backoff_ms" json:"max_backoff_ms"`
	SubmitTimeoutMillis  int64 `yaml:"submit_timeout_ms" json:"submit_timeout_ms"`
}

type TxWatcherConfig struct {
	Enabled            bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis     int64 `yaml:"interval_ms" json:"interval_ms"`
	BurnTimeoutMillis  int64 `yaml:"burn_timeout_ms" json:"burn_timeout_ms"`
	ClaimTimeoutMillis int64 `yaml:"claim_timeout_ms" json:"claim_timeout_ms"`
}
