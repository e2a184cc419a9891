package service

import (
	"context"
	"testing"

	"portfolio-be/internal/content"
	"portfolio-be/internal/contentstore"
	"portfolio-be/internal/editor"
	"portfolio-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPortfolio(t *testing.T) (IPortfolioService, *contentstore.Collection[entity.Post], *contentstore.Collection[entity.ExperienceEntry]) {
	t.Helper()
	defaults := mustDefaults(t)
	store := newTestStore(t)
	posts := contentstore.NewCollection[entity.Post](store, contentstore.KeyPosts)
	exps := contentstore.NewCollection[entity.ExperienceEntry](store, contentstore.KeyExperiences)
	return NewPortfolioService(defaults, posts, exps), posts, exps
}

func mustDefaults(t *testing.T) *entity.Portfolio {
	t.Helper()
	defaults, err := content.Default()
	require.NoError(t, err)
	return defaults
}

func TestWritingFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPortfolio(t)

	posts, err := svc.Writing(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	assert.Equal(t, "fairness-resource-constraints", posts[0].Id)

	post, err := svc.Post(ctx, "fairness-resource-constraints")
	require.NoError(t, err)
	assert.Equal(t, "Jan 15, 2025", post.Date)

	_, err = svc.Post(ctx, "missing")
	assert.ErrorIs(t, err, editor.ErrRecordNotFound)
}

func TestSavedCollectionsReplaceDefaultsAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	svc, posts, exps := newTestPortfolio(t)

	before, err := svc.Writing(ctx)
	require.NoError(t, err)

	require.NoError(t, posts.Save(ctx, []entity.Post{{Id: "p1", Title: "Mine", Tags: []string{}}}))

	cached, err := svc.Writing(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, cached)

	svc.Invalidate(contentstore.KeyPosts)
	fresh, err := svc.Writing(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Mine", fresh[0].Title)

	require.NoError(t, exps.Save(ctx, []entity.ExperienceEntry{{Id: "e1", Title: "Job", Type: entity.ExperienceTypeWork}}))
	entries, err := svc.Experience(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Job", entries[0].Title)
}

func TestOverview(t *testing.T) {
	svc, _, _ := newTestPortfolio(t)
	res, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Charchit Dhawan", res.Profile.Name)
	assert.Len(t, res.SelectedWork, 4)
	assert.Equal(t, "https://github.com/charchitd", res.Links["github"])
}

// pausingLoader blocks inside Load after reading until release is closed.
type pausingLoader struct {
	inner   recordLoader[entity.Post]
	reading chan struct{}
	release chan struct{}
}

func (l *pausingLoader) Load(ctx context.Context) ([]entity.Post, error) {
	records, err := l.inner.Load(ctx)
	close(l.reading)
	<-l.release
	return records, err
}

func TestInvalidateDuringLoadIsNotOverwritten(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	posts := contentstore.NewCollection[entity.Post](store, contentstore.KeyPosts)
	exps := contentstore.NewCollection[entity.ExperienceEntry](store, contentstore.KeyExperiences)
	require.NoError(t, posts.Save(ctx, []entity.Post{{Id: "old", Tags: []string{}}}))

	loader := &pausingLoader{inner: posts, reading: make(chan struct{}), release: make(chan struct{})}
	svc := NewPortfolioService(mustDefaults(t), loader, exps)

	done := make(chan []entity.Post)
	go func() {
		records, err := svc.Writing(ctx)
		assert.NoError(t, err)
		done <- records
	}()

	<-loader.reading
	require.NoError(t, posts.Save(ctx, []entity.Post{{Id: "new", Tags: []string{}}}))
	svc.Invalidate(contentstore.KeyPosts)
	close(loader.release)

	stale := <-done
	require.Len(t, stale, 1)
	assert.Equal(t, "old", stale[0].Id)

	// The loader is drained, so the next read goes straight to the store.
	loader.inner = posts
	loader.reading = make(chan struct{})
	loader.release = make(chan struct{})
	close(loader.release)

	fresh, err := svc.Writing(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "new", fresh[0].Id)
}

func TestSaveInvalidatesSynchronously(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	posts := contentstore.NewCollection[entity.Post](store, contentstore.KeyPosts)
	exps := contentstore.NewCollection[entity.ExperienceEntry](store, contentstore.KeyExperiences)
	svc := NewPortfolioService(mustDefaults(t), posts, exps)
	store.Subscribe(svc)

	_, err := svc.Writing(ctx)
	require.NoError(t, err)
	_, err = svc.Experience(ctx)
	require.NoError(t, err)

	require.NoError(t, posts.Save(ctx, []entity.Post{{Id: "p1", Title: "Fresh", Tags: []string{}}}))
	require.NoError(t, exps.Save(ctx, []entity.ExperienceEntry{{Id: "e1", Title: "Job", Type: entity.ExperienceTypeWork}}))

	writing, err := svc.Writing(ctx)
	require.NoError(t, err)
	require.Len(t, writing, 1)
	assert.Equal(t, "p1", writing[0].Id)

	entries, err := svc.Experience(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].Id)
}
