package service

import (
	"context"
	"testing"
	"time"

	"github.com/dmdev/docmanager/internal/document"
	"github.com/dmdev/docmanager/internal/document/repository"
	"github.com/dmdev/docmanager/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestServiceSaveFindSearchDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryService(repository.WithIDGenerator(repository.ULIDGenerator))

	generated := testutil.ToFloat64(metrics.DocumentsSaved.WithLabelValues("generated"))
	provided := testutil.ToFloat64(metrics.DocumentsSaved.WithLabelValues("provided"))

	d, err := svc.Save(ctx, &document.Document{
		Title:   "Dune",
		Content: "departure to Arrakis",
		Author:  document.Author{ID: "fh", Name: "Frank Herbert"},
		Created: time.Date(1965, time.August, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, d.ID, 26, "ulid ids are 26 characters")

	_, err = svc.Save(ctx, &document.Document{ID: "fixed", Title: "Intermezzo"})
	require.NoError(t, err)

	require.Equal(t, generated+1, testutil.ToFloat64(metrics.DocumentsSaved.WithLabelValues("generated")))
	require.Equal(t, provided+1, testutil.ToFloat64(metrics.DocumentsSaved.WithLabelValues("provided")))
	require.Equal(t, 2.0, testutil.ToFloat64(metrics.DocumentsStored))

	got, err := svc.FindByID(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, d, got)

	list, err := svc.Search(ctx, document.SearchRequest{AuthorIDs: []string{"fh"}})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, d.ID, list[0].ID)

	require.NoError(t, svc.Delete(ctx, d.ID))
	_, err = svc.FindByID(ctx, d.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, d.ID), ErrNotFound)
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.DocumentsStored))
}

func TestServiceOverSeededStore(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepoFrom(map[string]*document.Document{
		"a": {ID: "a", Title: "one"},
		"b": {ID: "b", Title: "two"},
	})
	svc := NewService(repo)
	require.Equal(t, 2.0, testutil.ToFloat64(metrics.DocumentsStored))

	misses := testutil.ToFloat64(metrics.DocumentLookups.WithLabelValues("miss"))
	_, err := svc.FindByID(ctx, "c")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, misses+1, testutil.ToFloat64(metrics.DocumentLookups.WithLabelValues("miss")))

	list, err := svc.Search(ctx, document.SearchRequest{})
	require.NoError(t, err)
	require.Len(t, list, 2)
}
