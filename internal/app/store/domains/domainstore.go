// internal/app/store/domains/domainstore.go
package domainstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dalemusser/technavigator/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Decode reads a JSON array of domain records. Unknown keys are rejected,
// matching the roadmap decoder. Validation is left to the catalog so every
// source is checked the same way.
func Decode(r io.Reader) ([]models.DomainRecord, error) {
	var recs []models.DomainRecord
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode domains: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode domains: unexpected data after array")
	}
	for i := range recs {
		recs[i].Position = i
	}
	return recs, nil
}

// FileLoader reads domains from a JSON file on disk.
type FileLoader struct {
	Path string
}

func (l FileLoader) LoadDomains(ctx context.Context) ([]models.DomainRecord, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// BytesLoader decodes domains from an in-memory document, typically the
// embedded default dataset.
type BytesLoader []byte

func (l BytesLoader) LoadDomains(ctx context.Context) ([]models.DomainRecord, error) {
	return Decode(bytes.NewReader(l))
}

// Store provides access to the domains collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new domain store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("domains")}
}

// LoadDomains returns all domain documents in dataset order.
func (s *Store) LoadDomains(ctx context.Context) ([]models.DomainRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.DomainRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceAll swaps the whole collection for recs, assigning positions in
// slice order. The dataset is only ever replaced wholesale.
func (s *Store) ReplaceAll(ctx context.Context, recs []models.DomainRecord) error {
	if _, err := s.c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(recs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(recs))
	for i, d := range recs {
		d.Position = i
		docs[i] = d
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}

// EnsureIndexes creates the unique index on id.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_domain_id"),
	})
	return err
}
