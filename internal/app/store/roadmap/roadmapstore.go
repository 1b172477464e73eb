// internal/app/store/roadmap/roadmapstore.go
package roadmapstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dalemusser/technavigator/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"
)

// Decode reads a YAML sequence of stage definitions. An empty document
// yields no stages.
func Decode(r io.Reader) ([]models.RoadmapStage, error) {
	var stages []models.RoadmapStage
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&stages); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode roadmap: %w", err)
	}
	for i := range stages {
		stages[i].Position = i
	}
	return stages, nil
}

// FileLoader reads stage definitions from a YAML file on disk.
type FileLoader struct {
	Path string
}

func (l FileLoader) LoadStages(ctx context.Context) ([]models.RoadmapStage, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// BytesLoader decodes stage definitions from an in-memory YAML document.
type BytesLoader []byte

func (l BytesLoader) LoadStages(ctx context.Context) ([]models.RoadmapStage, error) {
	return Decode(bytes.NewReader(l))
}

// Store provides access to the roadmap_stages collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new roadmap stage store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("roadmap_stages")}
}

// LoadStages returns all stages ordered by position.
func (s *Store) LoadStages(ctx context.Context) ([]models.RoadmapStage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RoadmapStage
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceAll swaps the whole collection for stages in slice order.
func (s *Store) ReplaceAll(ctx context.Context, stages []models.RoadmapStage) error {
	if _, err := s.c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(stages) == 0 {
		return nil
	}
	docs := make([]interface{}, len(stages))
	for i, st := range stages {
		st.Position = i
		docs[i] = st
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}

// EnsureIndexes creates the unique index on id.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_stage_id"),
	})
	return err
}
