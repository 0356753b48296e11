package reconcile

import (
	"bytes"
	"context"
	"fmt"

	"precinct-reconciler/core/combine"
	"precinct-reconciler/core/diff"
	"precinct-reconciler/core/precinct"
	"precinct-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service runs the combine and diff engines over bucket objects.
type Service struct {
	store  storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new reconcile service.
func NewService(store storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{store: store, bucket: bucket, logger: logger}
}

// LoadTable downloads a bucket object and parses it as a wide CSV. The
// object name becomes the table label used in reports.
func (s *Service) LoadTable(ctx context.Context, object string) (*precinct.Table, error) {
	reader, err := s.store.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", object, err)
	}
	defer reader.Close()
	return precinct.ReadCSV(reader, object)
}

// SaveTable uploads a table as a CSV object.
func (s *Service) SaveTable(ctx context.Context, object string, table *precinct.Table) error {
	var buf bytes.Buffer
	if err := precinct.WriteCSV(&buf, table); err != nil {
		return fmt.Errorf("encoding %s: %w", object, err)
	}
	_, err := s.store.PutObject(ctx, s.bucket, object,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", object, err)
	}
	return nil
}

// Combine downloads the named per-vote-type objects and merges them.
func (s *Service) Combine(ctx context.Context, objects map[precinct.VoteType]string) (*combine.Result, error) {
	inputs := make([]combine.Input, 0, len(objects))
	for _, t := range precinct.TypePriority {
		object, ok := objects[t]
		if !ok {
			continue
		}
		table, err := s.LoadTable(ctx, object)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, combine.Input{Type: t, Table: table})
	}
	result, err := combine.Combine(inputs)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Combine finished",
		zap.Int("inputs", len(inputs)),
		zap.Int("rows", result.RowsCombined),
		zap.Int("keys_dropped", result.KeysDropped),
		zap.Int("conflicts", len(result.Conflicts)))
	return result, nil
}

// Diff downloads two objects and compares them.
func (s *Service) Diff(ctx context.Context, object1, object2 string, opts diff.Options) ([]diff.Record, error) {
	table1, err := s.LoadTable(ctx, object1)
	if err != nil {
		return nil, err
	}
	table2, err := s.LoadTable(ctx, object2)
	if err != nil {
		return nil, err
	}
	records, err := diff.Diff(table1, table2, opts)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Diff finished",
		zap.String("file1", object1),
		zap.String("file2", object2),
		zap.Int("diffs", len(records)))
	return records, nil
}
