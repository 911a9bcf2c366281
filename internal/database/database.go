package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Open connects to the document database named by the MONGO_URI and
// MONGO_DB environment variables and verifies the connection with a ping.
func Open() (*mongo.Database, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "zellige"
	}
	return OpenWithURI(uri, name)
}

// OpenWithURI connects to any URI/database pair. Split out so tests and
// tooling can point at their own instance.
func OpenWithURI(uri, name string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Printf("Connected to document database %q", name)
	return client.Database(name), nil
}
