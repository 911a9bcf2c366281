package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Watch emits a full collection snapshot whenever anything in the
// collection changes, starting with one immediately. Consumers replace
// their local copy with each snapshot wholesale; there is no incremental
// diffing, which is exactly how the storefront applies live-query updates.
// The channel closes when ctx is canceled or the change stream ends.
//
// Requires the database to run as a replica set (change streams).
func (c *Collection) Watch(ctx context.Context, sort bson.D) (<-chan []bson.Raw, error) {
	stream, err := c.coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, err
	}

	out := make(chan []bson.Raw, 1)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		send := func() bool {
			snap, err := c.snapshot(ctx, sort)
			if err != nil {
				log.Printf("store: snapshot for %s failed: %v", c.coll.Name(), err)
				return true
			}
			select {
			case out <- snap:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !send() {
			return
		}
		for stream.Next(ctx) {
			if !send() {
				return
			}
		}
	}()
	return out, nil
}

func (c *Collection) snapshot(ctx context.Context, sort bson.D) ([]bson.Raw, error) {
	var docs []bson.Raw
	if err := c.All(ctx, bson.M{}, sort, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
