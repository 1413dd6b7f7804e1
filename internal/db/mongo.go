package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rmussard/easyloc-api/internal/config"
)

// NewMongo connects to the document store and makes sure the uniqueness
// indexes behind customer names and licence plates exist.
func NewMongo(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	database := client.Database(cfg.Mongo.Database)
	if err := ensureIndexes(connectCtx, database); err != nil {
		return nil, nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")
	return client, database, nil
}

func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection("customers").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "first_name", Value: 1}, {Key: "last_name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uq_customers_name"),
	})
	if err != nil {
		return fmt.Errorf("customers index: %w", err)
	}

	_, err = database.Collection("vehicles").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "licence_plate", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uq_vehicles_licence_plate"),
	})
	if err != nil {
		return fmt.Errorf("vehicles index: %w", err)
	}
	return nil
}
