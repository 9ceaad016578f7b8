package app

import (
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/dan13ram/teleport-relayer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/teleport-relayer/app/mocks"
)

func init() {
	log.SetOutput(io.Discard)
}

func NewTestHealthCheck() *HealthCheckRunner {
	x := &HealthCheckRunner{
		relayerAddress: "0xrelayer",
		hostname:       "hostname",
	}
	return x
}

func TestHealthStatus(t *testing.T) {
	x := NewTestHealthCheck()

	status := x.Status()
	assert.Equal(t, status.BlockNumber, "")
}

func TestFindLastHealth(t *testing.T) {
	t.Run("No Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		x := NewTestHealthCheck()
		filter := bson.M{
			"relayer_address": x.relayerAddress,
			"hostname":        x.hostname,
		}
		var health models.Health
		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, filter, &health).Return(nil)

		_, err := x.FindLastHealth()

		assert.Nil(t, err)
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		x := NewTestHealthCheck()
		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, mock.Anything, mock.Anything).Return(errors.New("error"))

		_, err := x.FindLastHealth()

		assert.NotNil(t, err)
		assert.Equal(t, err.Error(), "error")
	})
}

type MockService struct {
	healthy bool
}

func (e *MockService) Start() {}

func (e *MockService) Stop() {}

const MockServiceName = "mock"

func (e *MockService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         MockServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		BlockNumber:  "42",
		Healthy:      e.healthy,
	}
}

func NewMockService() Service {
	return &MockService{healthy: true}
}

func TestServiceHealths(t *testing.T) {
	x := NewTestHealthCheck()
	wg := &sync.WaitGroup{}
	x.SetServices([]Service{
		NewEmptyService(wg),
		NewEmptyService(wg),
		NewMockService(),
	})

	assert.Equal(t, len(x.services), 3)

	healths := x.ServiceHealths()
	assert.Equal(t, len(healths), 1)
	assert.Equal(t, healths[0].Name, MockServiceName)
	assert.True(t, x.Healthy())

	x.SetServices([]Service{NewMockService(), &MockService{healthy: false}})
	assert.False(t, x.Healthy())
}

func TestServiceHealthMap(t *testing.T) {
	healths := ServiceHealthMap(models.Health{
		ServiceHealths: []models.ServiceHealth{
			{Name: "TELEPORT MONITOR 1", BlockNumber: "100"},
			{Name: "CLAIM MONITOR", BlockNumber: "7"},
		},
	})

	assert.Len(t, healths, 2)
	assert.Equal(t, "100", healths["TELEPORT MONITOR 1"].BlockNumber)
	assert.Equal(t, "7", healths["CLAIM MONITOR"].BlockNumber)
}

func TestPostHealth(t *testing.T) {
	t.Run("No Error", func(t *testing.T) {
		x := NewTestHealthCheck()
		wg := &sync.WaitGroup{}
		x.SetServices([]Service{
			NewEmptyService(wg),
			NewMockService(),
		})

		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		filter := bson.M{
			"relayer_address": x.relayerAddress,
			"hostname":        x.hostname,
		}

		onInsert := bson.M{
			"relayer_address": x.relayerAddress,
			"hostname":        x.hostname,
			"created_at":      nil,
		}

		onUpdate := bson.M{
			"healthy":         true,
			"service_healths": nil,
			"updated_at":      nil,
		}

		update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

		call := mockDB.EXPECT().UpsertOne(models.CollectionHealthChecks, filter, mock.Anything)
		call.Run(func(_ string, _ interface{}, arg interface{}) {
			updateArg := arg.(bson.M)

			healths := updateArg["$set"].(bson.M)["service_healths"].([]models.ServiceHealth)
			assert.Len(t, healths, 1)
			assert.Equal(t, "42", healths[0].BlockNumber)

			updateArg["$setOnInsert"].(bson.M)["created_at"] = nil
			updateArg["$set"].(bson.M)["updated_at"] = nil
			updateArg["$set"].(bson.M)["service_healths"] = nil

			assert.Equal(t, updateArg, update)
		})
		call.Return(primitive.NewObjectID(), nil)

		success := x.PostHealth()
		assert.True(t, success)
	})

	t.Run("With Error", func(t *testing.T) {
		x := NewTestHealthCheck()
		x.SetServices([]Service{NewMockService()})

		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		call := mockDB.EXPECT().UpsertOne(mock.Anything, mock.Anything, mock.Anything)
		call.Return(primitive.NewObjectID(), errors.New("error"))

		success := x.PostHealth()
		assert.False(t, success)
	})

	t.Run("Via Run", func(t *testing.T) {
		x := NewTestHealthCheck()
		x.SetServices([]Service{NewMockService()})

		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		call := mockDB.EXPECT().UpsertOne(mock.Anything, mock.Anything, mock.Anything)
		call.Return(primitive.NewObjectID(), nil)

		x.Run()
	})
}

func TestNewHealthCheck(t *testing.T) {
	x := NewHealthCheck("0xrelayer")

	hostname, _ := os.Hostname()

	assert.NotNil(t, x)
	assert.Equal(t, "0xrelayer", x.relayerAddress)
	assert.Equal(t, hostname, x.hostname)

	Config.HealthCheck.IntervalMillis = 1000
	service := NewHealthService(x, &sync.WaitGroup{})
	assert.NotNil(t, service)
	assert.Equal(t, HealthServiceName, service.Health().Name)
}
