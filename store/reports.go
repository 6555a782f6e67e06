package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"persona-service/metrics"
	"persona-service/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrReportNotFound = errors.New("report not found")

// ReportStore persists rendered persona reports in MongoDB.
type ReportStore struct {
	collection *mongo.Collection
}

func NewReportStore(db *mongo.Database) *ReportStore {
	s := &ReportStore{collection: db.Collection("reports")}
	s.ensureIndexes()
	return s
}

func (s *ReportStore) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "filename", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "username", Value: 1},
				{Key: "generated_at", Value: -1},
			},
		},
	}

	if _, err := s.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("Warning: Failed to create report indexes: %v", err)
	}
}

// Save upserts a report by filename.
func (s *ReportStore) Save(ctx context.Context, report model.Report) error {
	start := time.Now()
	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"filename": report.Filename},
		report,
		options.Replace().SetUpsert(true),
	)
	s.observe("replace", start, err)
	if err != nil {
		return fmt.Errorf("saving report %s: %w", report.Filename, err)
	}
	return nil
}

// GetByFilename loads a stored report including its body.
func (s *ReportStore) GetByFilename(ctx context.Context, filename string) (*model.Report, error) {
	start := time.Now()
	var report model.Report
	err := s.collection.FindOne(ctx, bson.M{"filename": filename}).Decode(&report)
	s.observe("find_one", start, err)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading report %s: %w", filename, err)
	}
	return &report, nil
}

// ListByUser returns report metadata for a user, newest first. Bodies
// are omitted.
func (s *ReportStore) ListByUser(ctx context.Context, username string) ([]model.Report, error) {
	start := time.Now()
	opts := options.Find().
		SetSort(bson.D{{Key: "generated_at", Value: -1}}).
		SetProjection(bson.M{"body": 0})

	cursor, err := s.collection.Find(ctx, bson.M{"username": username}, opts)
	s.observe("find", start, err)
	if err != nil {
		return nil, fmt.Errorf("listing reports for %s: %w", username, err)
	}

	reports := []model.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *ReportStore) observe(operation string, start time.Time, err error) {
	status := "success"
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		status = "error"
	}
	metrics.MongoOperationsTotal.WithLabelValues(operation, "reports", status).Inc()
	metrics.MongoOperationDuration.WithLabelValues(operation, "reports").Observe(time.Since(start).Seconds())
}
