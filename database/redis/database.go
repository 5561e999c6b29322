package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tealiumiq/webformtags"
)

// DBSource is type for describing who create database instance
type DBSource string

// All types of database users
const (
	API        DBSource = "API"
	testSource DBSource = "test"
)

// DbConnector contains redis client
type DbConnector struct {
	client  *redis.UniversalClient
	logger  webformtags.Logger
	context context.Context
	source  DBSource
}

func NewDatabase(logger webformtags.Logger, config DatabaseConfig, source DBSource) *DbConnector {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		MasterName:   config.MasterName,
		Addrs:        config.Addrs,
		Username:     config.Username,
		Password:     config.Password,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		MaxRetries:   config.MaxRetries,
	})

	connector := DbConnector{
		client:  &client,
		logger:  logger,
		context: context.Background(),
		source:  source,
	}
	return &connector
}

// NewTestDatabase use it only for tests
func NewTestDatabase(logger webformtags.Logger) *DbConnector {
	return NewDatabase(logger, DatabaseConfig{
		Addrs:       []string{"0.0.0.0:6379"},
		DialTimeout: time.Second,
	}, testSource)
}

// Ping checks connection to redis
func (connector *DbConnector) Ping() error {
	return (*connector.client).Ping(connector.context).Err()
}

// Close closes redis client
func (connector *DbConnector) Close() error {
	return (*connector.client).Close()
}

// Flush deletes all the keys of the DB, use it only for tests
func (connector *DbConnector) Flush() {
	client := *connector.client

	switch c := client.(type) {
	case *redis.ClusterClient:
		err := c.ForEachMaster(connector.context, func(ctx context.Context, shard *redis.Client) error {
			return shard.FlushDB(ctx).Err()
		})
		if err != nil {
			return
		}
	default:
		client.FlushDB(connector.context)
	}
}

// Get key ttl, use it only for tests
func (connector *DbConnector) getTTL(key string) time.Duration {
	return (*connector.client).PTTL(connector.context, key).Val()
}
