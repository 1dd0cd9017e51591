package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB represents a connection with MongoDB.
type MongoDB struct {
	DB *mongo.Database
}

var _ Database = (*MongoDB)(nil)

// MongoDBOptions represents options for connecting to MongoDB.
type MongoDBOptions struct {
	URI      string
	Database string
	// ConnectTimeout bounds server selection for every operation.
	ConnectTimeout time.Duration
}

// NewMongoDB return new instance of MongoDB.
// The driver connects lazily, so an unreachable server is not reported here, use Ping for that.
func NewMongoDB(ctx context.Context, opts MongoDBOptions) (*MongoDB, error) {
	if opts.URI == "" {
		return nil, errors.New("mongodb uri is empty")
	}

	clientOptions := options.Client().ApplyURI(opts.URI)
	if opts.ConnectTimeout > 0 {
		clientOptions.SetServerSelectionTimeout(opts.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	return &MongoDB{
		DB: client.Database(opts.Database),
	}, nil
}

// Ping checks that the primary is reachable.
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.DB.Client().Ping(ctx, readpref.Primary())
}

// Close closes the connection with MongoDB.
func (m *MongoDB) Close(ctx context.Context) error {
	if m.DB != nil {
		err := m.DB.Client().Disconnect(ctx)
		if err != nil {
			return fmt.Errorf("disconnect from mongodb: %w", err)
		}
	}

	return nil
}
