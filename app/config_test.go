package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dan13ram/teleport-relayer/models"
	"github.com/stretchr/testify/assert"

	log "github.com/sirupsen/logrus"
)

func TestReadConfigFromConfigFile(t *testing.T) {
	t.Run("Config File Provided", func(t *testing.T) {
		Config = models.Config{}
		read := readConfigFromConfigFile("../config.sample.yml")

		assert.Equal(t, read, true)
		assert.Equal(t, Config.MongoDB.Database, "mongodb-database")
		assert.Equal(t, Config.MongoDB.TimeoutMillis, int64(2000))
		assert.Equal(t, Config.Destination.ChainID, "31337")
		assert.Len(t, Config.SourceChains, 1)
		assert.Equal(t, Config.SourceChains[0].Name, "source-one")
		assert.Equal(t, Config.Commitment.BatchSizeThreshold, 64)
		assert.Equal(t, Config.RootPublisher.MaxAttempts, int64(5))
	})

	t.Run("No Config File Provided", func(t *testing.T) {
		read := readConfigFromConfigFile("")
		assert.Equal(t, read, false)
	})

	t.Run("Invalid Config File Path", func(t *testing.T) {
		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readConfigFromConfigFile("../config.sample.invalid.yml") }, "readConfigFromConfigFile should panic")
	})

	t.Run("Invalid Config File Contents", func(t *testing.T) {
		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		configFile := filepath.Join(t.TempDir(), "invalid.yml")
		assert.NoError(t, os.WriteFile(configFile, []byte("mongodb: [unclosed"), 0o600))

		assert.Panics(t, func() { readConfigFromConfigFile(configFile) }, "readConfigFromConfigFile should panic")
	})
}

func TestInitConfig(t *testing.T) {
	t.Run("Config Initialization Success", func(t *testing.T) {
		Config = models.Config{}
		InitConfig("../config.sample.yml", "../sample.env")

		assert.Equal(t, "mongodb-database", Config.MongoDB.Database)
		assert.Equal(t, int64(DefaultIntervalMillis), Config.TeleportMonitor.IntervalMillis)
	})

	t.Run("Config Initialization Env Only Needs Source Chains", func(t *testing.T) {
		Config = models.Config{}

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { InitConfig("", "../sample.env") })
	})
}

func validTestConfig() models.Config {
	return models.Config{
		MongoDB: models.MongoConfig{URI: "mongodb://localhost", Database: "db"},
		Destination: models.DestinationConfig{
			ChainID:             "1",
			RPCURL:              "http://localhost:8545",
			RootRegistryAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
			Mnemonic:            "test test test test test test test test test test test junk",
		},
		SourceChains: []models.SourceChainConfig{
			{ChainID: "2", RPCURL: "http://localhost:8546", TeleporterAddress: "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"},
		},
	}
}

func TestValidateConfig(t *testing.T) {
	t.Run("Valid Configuration Gets Defaults", func(t *testing.T) {
		Config = validTestConfig()

		validateConfig()

		assert.Equal(t, int64(DefaultMongoTimeoutMillis), Config.MongoDB.TimeoutMillis)
		assert.Equal(t, DefaultBatchSizeThreshold, Config.Commitment.BatchSizeThreshold)
		assert.Equal(t, int64(DefaultMaxLatencyMillis), Config.Commitment.MaxLatencyMillis)
		assert.Equal(t, "2", Config.SourceChains[0].Name)
		assert.Equal(t, int64(DefaultRPCTimeoutMillis), Config.SourceChains[0].RPCTimeoutMillis)
		assert.Equal(t, DefaultAPIListenAddress, Config.API.ListenAddress)
	})

	invalid := []struct {
		name   string
		mutate func(c *models.Config)
	}{
		{"Empty", func(c *models.Config) { *c = models.Config{} }},
		{"No Mongo URI", func(c *models.Config) { c.MongoDB.URI = "" }},
		{"No Registry", func(c *models.Config) { c.Destination.RootRegistryAddress = "" }},
		{"No Source Chains", func(c *models.Config) { c.SourceChains = nil }},
		{"Duplicate Chain", func(c *models.Config) { c.SourceChains = append(c.SourceChains, c.SourceChains[0]) }},
		{"Chain ID With Colon", func(c *models.Config) { c.SourceChains[0].ChainID = "a:b" }},
		{"Negative Confirmations", func(c *models.Config) { c.SourceChains[0].Confirmations = -1 }},
		{"Publisher Needs Key", func(c *models.Config) {
			c.RootPublisher.Enabled = true
			c.Destination.Mnemonic = ""
		}},
		{"Claims Need Address", func(c *models.Config) { c.ClaimMonitor.Enabled = true }},
		{"Redis Needs URL", func(c *models.Config) { c.Redis.Enabled = true }},
		{"Kafka Needs Brokers", func(c *models.Config) { c.Kafka.Enabled = true }},
		{"Backoff Out Of Order", func(c *models.Config) {
			c.RootPublisher.InitialBackoffMillis = 10
			c.RootPublisher.MaxBackoffMillis = 5
		}},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			Config = validTestConfig()
			tc.mutate(&Config)

			defer func() { log.StandardLogger().ExitFunc = nil }()
			log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

			assert.Panics(t, func() { validateConfig() }, "validateConfig should panic")
		})
	}
}
