package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/addsub/internal/domain"
	"github.com/DjordjeVuckovic/addsub/internal/history"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// Document is the stored form of an evaluation.
type Document struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Canonical  string    `json:"canonical"`
	Result     *int32    `json:"result,omitempty"`
	Error      string    `json:"error,omitempty"`
	Strict     bool      `json:"strict"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &Store{
		client:    client,
		indexName: config.IndexName,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

func (s *Store) Save(ctx context.Context, e domain.Evaluation) (uuid.UUID, error) {
	history.Prepare(&e, time.Now)
	doc := toDocument(e)

	res, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index evaluation: %w", err)
	}

	slog.Debug("Evaluation indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return e.ID, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation %s: %w", id, err)
	}
	if !res.Found {
		return nil, history.ErrNotFound
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evaluation: %w", err)
	}
	return toDomain(doc)
}

func (s *Store) List(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	sortOrderDesc := sortorder.Desc

	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"created_at": {Order: &sortOrderDesc},
			},
		}).
		Size(history.ClampLimit(limit)).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	out := make([]domain.Evaluation, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal evaluation: %w", err)
		}
		e, err := toDomain(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping Elasticsearch: %w", err)
	}
	if !ok {
		return fmt.Errorf("elasticsearch ping returned a non-success status")
	}
	return nil
}

func (s *Store) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"expression": types.NewKeywordProperty(),
			"canonical":  types.NewKeywordProperty(),
			"result":     types.NewIntegerNumberProperty(),
			"error":      types.NewTextProperty(),
			"strict":     types.NewBooleanProperty(),
			"created_at": types.NewDateProperty(),
		},
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

func toDocument(e domain.Evaluation) Document {
	return Document{
		ID:         e.ID.String(),
		Expression: e.Expression,
		Canonical:  e.Canonical,
		Result:     e.Result,
		Error:      e.Error,
		Strict:     e.Strict,
		CreatedAt:  e.CreatedAt,
	}
}

func toDomain(doc Document) (*domain.Evaluation, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse evaluation ID %q: %w", doc.ID, err)
	}
	return &domain.Evaluation{
		ID:         id,
		Expression: doc.Expression,
		Canonical:  doc.Canonical,
		Result:     doc.Result,
		Error:      doc.Error,
		Strict:     doc.Strict,
		CreatedAt:  doc.CreatedAt,
	}, nil
}

var _ history.Store = (*Store)(nil)
