package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/apperror"
)

func TestFetchEmptyStore(t *testing.T) {
	repo := NewContentRepository()

	_, _, err := repo.Fetch(context.Background())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestReplaceThenFetch(t *testing.T) {
	repo := NewContentRepository()
	ctx := context.Background()

	doc := &entity.WebsiteContent{Home: entity.HomeContent{Headline: "v1"}}
	first, err := repo.Replace(ctx, doc)
	require.NoError(t, err)

	got, updatedAt, err := repo.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1", got.Home.Headline)
	assert.Equal(t, first, updatedAt)

	// Last writer wins.
	doc2 := &entity.WebsiteContent{Home: entity.HomeContent{Headline: "v2"}}
	_, err = repo.Replace(ctx, doc2)
	require.NoError(t, err)

	got, _, err = repo.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Home.Headline)
}

func TestFetchReturnsCopy(t *testing.T) {
	repo := NewContentRepository()
	ctx := context.Background()

	_, err := repo.Replace(ctx, &entity.WebsiteContent{
		Projects: []entity.Project{{Id: 1, Title: "P"}},
	})
	require.NoError(t, err)

	got, _, err := repo.Fetch(ctx)
	require.NoError(t, err)
	got.Projects[0].Title = "mutated"

	again, _, err := repo.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "P", again.Projects[0].Title)
}
