package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup or delete targets a document that
// does not exist.
var ErrNotFound = errors.New("store: document not found")

// Store gives access to the application's document collections through the
// four primitives the storefront already relies on (set, update, delete,
// add-with-auto-id) plus snapshot watching.
type Store struct {
	db *mongo.Database
}

// New wraps an open database handle.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Collection returns the named collection.
func (s *Store) Collection(name string) *Collection {
	return &Collection{coll: s.db.Collection(name)}
}

// WithTransaction runs fn inside a single multi-document transaction.
// Used where the storefront's two-step writes left a gap: review submission
// plus the order's hasReviewed flag, and multi-line cart checkout.
func (s *Store) WithTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := s.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// Collection wraps one document collection.
type Collection struct {
	coll *mongo.Collection
}

// NewID generates a document identifier in the same format the database
// itself would issue.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// Set writes the full document under the given id, creating it if needed.
func (c *Collection) Set(ctx context.Context, id string, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	_, err := c.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts)
	return err
}

// Update applies a partial $set to the document. Updating a missing
// document is ErrNotFound.
func (c *Collection) Update(ctx context.Context, id string, fields bson.M) error {
	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Unset removes fields from the document.
func (c *Collection) Unset(ctx context.Context, id string, fields ...string) error {
	unset := bson.M{}
	for _, f := range fields {
		unset[f] = ""
	}
	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$unset": unset})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document. Deleting a missing document is ErrNotFound.
func (c *Collection) Delete(ctx context.Context, id string) error {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddAutoID inserts the document under a freshly generated id and returns
// that id. The document is flattened to a map so the id can be attached
// without the caller pre-filling one.
func (c *Collection) AddAutoID(ctx context.Context, doc interface{}) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", err
	}
	id := NewID()
	m["_id"] = id
	if _, err := c.coll.InsertOne(ctx, m); err != nil {
		return "", err
	}
	return id, nil
}

// Insert writes a document whose id the caller has already chosen. Unlike
// Set it fails on a duplicate id instead of overwriting, which is what
// order creation needs.
func (c *Collection) Insert(ctx context.Context, doc interface{}) error {
	_, err := c.coll.InsertOne(ctx, doc)
	return err
}

// Get decodes the document with the given id into dest.
func (c *Collection) Get(ctx context.Context, id string, dest interface{}) error {
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// FindOne decodes the first document matching filter into dest.
func (c *Collection) FindOne(ctx context.Context, filter interface{}, dest interface{}) error {
	err := c.coll.FindOne(ctx, filter).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// All decodes every document matching filter into dest (a pointer to a
// slice), sorted by sort when given.
func (c *Collection) All(ctx context.Context, filter interface{}, sort bson.D, dest interface{}) error {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cur, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, dest)
}

// Count returns the number of documents matching filter.
func (c *Collection) Count(ctx context.Context, filter interface{}) (int64, error) {
	return c.coll.CountDocuments(ctx, filter)
}
