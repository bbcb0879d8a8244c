package service

import (
	"context"
	"errors"

	"github.com/dmdev/docmanager/internal/document"
	"github.com/dmdev/docmanager/internal/document/repository"
	"github.com/dmdev/docmanager/pkg/logger"
	"github.com/dmdev/docmanager/pkg/metrics"
)

var (
	ErrNotFound = errors.New("not found")
)

// Service defines the document business operations used by the handler layer.
type Service interface {
	Save(ctx context.Context, d *document.Document) (*document.Document, error)
	FindByID(ctx context.Context, id string) (*document.Document, error)
	Search(ctx context.Context, req document.SearchRequest) ([]*document.Document, error)
	Delete(ctx context.Context, id string) error
}

// Store is the storage contract the service depends on. *repository.MemoryRepo implements it.
type Store interface {
	Save(d *document.Document) *document.Document
	FindByID(id string) (*document.Document, bool)
	Search(req document.SearchRequest) []*document.Document
	Delete(id string) error
	Len() int
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService(opts ...repository.Option) Service {
	return NewService(repository.NewMemoryRepo(opts...))
}

// NewService returns a Service over an existing store, e.g. one seeded with
// repository.NewMemoryRepoFrom.
func NewService(store Store) Service {
	s := &storeService{store: store}
	metrics.DocumentsStored.Set(float64(store.Len()))
	return s
}

type storeService struct {
	store Store
}

func (s *storeService) Save(ctx context.Context, d *document.Document) (*document.Document, error) {
	source := "provided"
	if d.IsNew() {
		source = "generated"
	}
	saved := s.store.Save(d)
	metrics.DocumentsSaved.WithLabelValues(source).Inc()
	metrics.DocumentsStored.Set(float64(s.store.Len()))
	logger.Debugf("document saved: id=%s id_source=%s", saved.ID, source)
	return saved, nil
}

func (s *storeService) FindByID(ctx context.Context, id string) (*document.Document, error) {
	d, ok := s.store.FindByID(id)
	if !ok {
		metrics.DocumentLookups.WithLabelValues("miss").Inc()
		return nil, ErrNotFound
	}
	metrics.DocumentLookups.WithLabelValues("hit").Inc()
	return d, nil
}

func (s *storeService) Search(ctx context.Context, req document.SearchRequest) ([]*document.Document, error) {
	out := s.store.Search(req)
	metrics.DocumentSearches.Inc()
	metrics.DocumentSearchResults.Observe(float64(len(out)))
	if req.IsEmpty() {
		logger.Debugf("document search: unconstrained, results=%d", len(out))
	} else {
		logger.Debugf("document search: titlePrefixes=%d containsContents=%d authorIds=%d results=%d",
			len(req.TitlePrefixes), len(req.ContainsContents), len(req.AuthorIDs), len(out))
	}
	return out, nil
}

func (s *storeService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	metrics.DocumentsStored.Set(float64(s.store.Len()))
	return nil
}
