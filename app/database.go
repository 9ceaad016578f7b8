package app

import (
	"context"
	"errors"
	"time"

	"github.com/dan13ram/teleport-relayer/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	lock "github.com/square/mongo-lock"
)

type Database interface {
	Connect() error
	SetupLockers() error
	SetupIndexes() error
	Disconnect() error

	InsertOne(collection string, data interface{}) (primitive.ObjectID, error)
	FindOne(collection string, filter interface{}, result interface{}) error
	FindOneSorted(collection string, filter interface{}, sort interface{}, result interface{}) error
	FindMany(collection string, filter interface{}, result interface{}) error
	FindManySorted(collection string, filter interface{}, sort interface{}, limit int64, result interface{}) error
	UpdateOne(collection string, filter interface{}, update interface{}) (int64, error)
	UpdateMany(collection string, filter interface{}, update interface{}) (int64, error)
	UpsertOne(collection string, filter interface{}, update interface{}) (primitive.ObjectID, error)

	XLock(resourceId string) (string, error)
	SLock(resourceId string) (string, error)
	Unlock(lockId string) error
}

// MongoDatabase is a wrapper around the mongo database
type MongoDatabase struct {
	db       *mongo.Database
	uri      string
	database string
	timeout  time.Duration
	locker   *lock.Client
}

var (
	DB Database
)

const CollectionLocks = "locks"

func (d *MongoDatabase) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d.timeout)
}

// Connect connects to the database
func (d *MongoDatabase) Connect() error {
	log.Debug("[DB] Connecting to database")
	wcMajority := writeconcern.Majority()
	wcMajority.WTimeout = d.timeout

	ctx, cancel := d.context()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri).SetWriteConcern(wcMajority))
	if err != nil {
		return err
	}
	if err = client.Ping(ctx, nil); err != nil {
		return err
	}
	d.db = client.Database(d.database)

	log.Info("[DB] Connected to mongo database: ", d.database)
	return nil
}

// SetupLockers sets up the distributed locker used to serialize batch sealing
func (d *MongoDatabase) SetupLockers() error {
	log.Debug("[DB] Setting up locker")

	ctx, cancel := d.context()
	defer cancel()

	locker := lock.NewClient(d.db.Collection(CollectionLocks))
	if err := locker.CreateIndexes(ctx); err != nil {
		return err
	}
	d.locker = locker

	log.Info("[DB] Locker setup")
	return nil
}

// XLock locks a resource for exclusive access
func (d *MongoDatabase) XLock(resourceId string) (string, error) {
	ctx, cancel := d.context()
	defer cancel()

	lockId := uuid.NewString()
	err := d.locker.XLock(ctx, resourceId, lockId, lock.LockDetails{TTL: 300})
	return lockId, err
}

// SLock locks a resource for shared access
func (d *MongoDatabase) SLock(resourceId string) (string, error) {
	ctx, cancel := d.context()
	defer cancel()

	lockId := uuid.NewString()
	err := d.locker.SLock(ctx, resourceId, lockId, lock.LockDetails{TTL: 300}, -1)
	return lockId, err
}

// Unlock unlocks a resource
func (d *MongoDatabase) Unlock(lockId string) error {
	ctx, cancel := d.context()
	defer cancel()

	_, err := d.locker.Unlock(ctx, lockId)
	return err
}

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func uniqueIndex(keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
}

func plainIndex(keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys}
}

func relayerIndexes() []collectionIndexes {
	return []collectionIndexes{
		{
			collection: models.CollectionTeleportEvents,
			models: []mongo.IndexModel{
				uniqueIndex(bson.D{{Key: "source_chain_id", Value: 1}, {Key: "burn_tx_hash", Value: 1}}),
				plainIndex(bson.D{{Key: "source_chain_id", Value: 1}, {Key: "status", Value: 1}, {Key: "block_number", Value: 1}, {Key: "log_index", Value: 1}}),
				plainIndex(bson.D{{Key: "token_id", Value: 1}, {Key: "block_number", Value: -1}}),
				plainIndex(bson.D{{Key: "leaf_hash", Value: 1}}),
			},
		},
		{
			collection: models.CollectionCommitmentBatches,
			models: []mongo.IndexModel{
				uniqueIndex(bson.D{{Key: "batch_id", Value: 1}}),
				uniqueIndex(bson.D{{Key: "source_chain_id", Value: 1}, {Key: "batch_number", Value: 1}}),
				plainIndex(bson.D{{Key: "root", Value: 1}}),
				plainIndex(bson.D{{Key: "status", Value: 1}, {Key: "sealed_at", Value: 1}}),
			},
		},
		{
			collection: models.CollectionTeleportRecords,
			models: []mongo.IndexModel{
				uniqueIndex(bson.D{{Key: "burn_tx_hash", Value: 1}}),
				plainIndex(bson.D{{Key: "status", Value: 1}, {Key: "updated_at", Value: 1}}),
				plainIndex(bson.D{{Key: "event.batch_id", Value: 1}}),
			},
		},
		{
			collection: models.CollectionCheckpoints,
			models: []mongo.IndexModel{
				uniqueIndex(bson.D{{Key: "name", Value: 1}}),
			},
		},
		{
			collection: models.CollectionHealthChecks,
			models: []mongo.IndexModel{
				uniqueIndex(bson.D{{Key: "relayer_address", Value: 1}, {Key: "hostname", Value: 1}}),
			},
		},
	}
}

// SetupIndexes creates the unique and query indexes of every collection
func (d *MongoDatabase) SetupIndexes() error {
	log.Debug("[DB] Setting up indexes")

	for _, indexes := range relayerIndexes() {
		log.Debug("[DB] Setting up indexes for ", indexes.collection)
		ctx, cancel := d.context()
		_, err := d.db.Collection(indexes.collection).Indexes().CreateMany(ctx, indexes.models)
		cancel()
		if err != nil {
			return err
		}
	}

	log.Info("[DB] Indexes setup")
	return nil
}

// Disconnect disconnects from the database
func (d *MongoDatabase) Disconnect() error {
	log.Debug("[DB] Disconnecting from database")
	ctx, cancel := d.context()
	defer cancel()
	err := d.db.Client().Disconnect(ctx)
	log.Info("[DB] Disconnected from database")
	return err
}

// InsertOne inserts a single document and returns its id
func (d *MongoDatabase) InsertOne(collection string, data interface{}) (primitive.ObjectID, error) {
	ctx, cancel := d.context()
	defer cancel()
	result, err := d.db.Collection(collection).InsertOne(ctx, data)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (d *MongoDatabase) FindOne(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	return d.db.Collection(collection).FindOne(ctx, filter).Decode(result)
}

func (d *MongoDatabase) FindOneSorted(collection string, filter interface{}, sort interface{}, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	opts := options.FindOne().SetSort(sort)
	return d.db.Collection(collection).FindOne(ctx, filter, opts).Decode(result)
}

func (d *MongoDatabase) FindMany(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	cursor, err := d.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	return cursor.All(ctx, result)
}

// FindManySorted returns matching documents in sort order, a limit of 0 means no limit
func (d *MongoDatabase) FindManySorted(collection string, filter interface{}, sort interface{}, limit int64, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := d.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, result)
}

// UpdateOne updates a single document and returns the number of matched documents
func (d *MongoDatabase) UpdateOne(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := d.context()
	defer cancel()
	result, err := d.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// UpdateMany updates every matching document and returns the number of modified documents
func (d *MongoDatabase) UpdateMany(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := d.context()
	defer cancel()
	result, err := d.db.Collection(collection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// UpsertOne updates or inserts a single document and returns the id of an inserted document
func (d *MongoDatabase) UpsertOne(collection string, filter interface{}, update interface{}) (primitive.ObjectID, error) {
	ctx, cancel := d.context()
	defer cancel()

	opts := options.Update().SetUpsert(true)
	result, err := d.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.UpsertedID.(primitive.ObjectID)
	return id, nil
}

func NewMongoDatabase(uri string, database string, timeout time.Duration) *MongoDatabase {
	return &MongoDatabase{
		uri:      uri,
		database: database,
		timeout:  timeout,
	}
}

// InitDB connects to mongo and prepares indexes and lockers
func InitDB() {
	db := NewMongoDatabase(
		Config.MongoDB.URI,
		Config.MongoDB.Database,
		time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond,
	)

	if err := db.Connect(); err != nil {
		log.Fatal("[DB] Error connecting to database: ", err)
	}
	if err := db.SetupIndexes(); err != nil {
		log.Fatal("[DB] Error setting up indexes: ", err)
	}
	if err := db.SetupLockers(); err != nil {
		log.Fatal("[DB] Error setting up lockers: ", err)
	}

	DB = db
	log.Info("[DB] Database initialized")
}

func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
