package app

import (
	"testing"

	"github.com/dan13ram/teleport-relayer/models"
	"github.com/stretchr/testify/assert"
)

func TestReadConfigFromENV(t *testing.T) {
	t.Run("Overrides", func(t *testing.T) {
		Config = models.Config{
			SourceChains: []models.SourceChainConfig{
				{Name: "base-sepolia", ChainID: "84532"},
				{ChainID: "11155111"},
			},
		}

		t.Setenv("MONGODB_URI", "mongodb://env")
		t.Setenv("MONGODB_TIMEOUT_MS", "1500")
		t.Setenv("DESTINATION_GAS_LIMIT", "500000")
		t.Setenv("DESTINATION_CONFIRMATIONS", "3")
		t.Setenv("SOURCE_BASE_SEPOLIA_RPC_URL", "http://base")
		t.Setenv("SOURCE_11155111_CONFIRMATIONS", "12")
		t.Setenv("COMMITMENT_BATCH_SIZE_THRESHOLD", "3")
		t.Setenv("ROOT_PUBLISHER_ENABLED", "true")
		t.Setenv("CLAIM_MONITOR_INTERVAL_MS", "250")
		t.Setenv("KAFKA_BROKERS", "localhost:9092")

		readConfigFromENV("")

		assert.Equal(t, "mongodb://env", Config.MongoDB.URI)
		assert.Equal(t, int64(1500), Config.MongoDB.TimeoutMillis)
		assert.Equal(t, uint64(500000), Config.Destination.GasLimit)
		assert.Equal(t, int64(3), Config.Destination.Confirmations)
		assert.Equal(t, "http://base", Config.SourceChains[0].RPCURL)
		assert.Equal(t, int64(12), Config.SourceChains[1].Confirmations)
		assert.Equal(t, 3, Config.Commitment.BatchSizeThreshold)
		assert.True(t, Config.RootPublisher.Enabled)
		assert.Equal(t, int64(250), Config.ClaimMonitor.IntervalMillis)
		assert.Equal(t, "localhost:9092", Config.Kafka.Brokers)
	})

	t.Run("Invalid Values Are Ignored", func(t *testing.T) {
		Config = models.Config{}
		Config.MongoDB.TimeoutMillis = 2000
		Config.API.Enabled = true

		t.Setenv("MONGODB_TIMEOUT_MS", "soon")
		t.Setenv("API_ENABLED", "maybe")
		t.Setenv("PROOF_CACHE_SIZE", "big")

		readConfigFromENV("")

		assert.Equal(t, int64(2000), Config.MongoDB.TimeoutMillis)
		assert.True(t, Config.API.Enabled)
		assert.Equal(t, 0, Config.Proof.CacheSize)
	})

	t.Run("Missing Env File", func(t *testing.T) {
		Config = models.Config{}
		assert.True(t, readConfigFromENV("../does-not-exist.env"))
	})
}

func TestSourceChainEnvPrefix(t *testing.T) {
	assert.Equal(t, "SOURCE_BASE_SEPOLIA_", sourceChainEnvPrefix(models.SourceChainConfig{Name: "base-sepolia"}))
	assert.Equal(t, "SOURCE_1_", sourceChainEnvPrefix(models.SourceChainConfig{ChainID: "1"}))
	assert.Equal(t, "SOURCE_MY_CHAIN_V2_", sourceChainEnvPrefix(models.SourceChainConfig{Name: "my chain.v2"}))
}
