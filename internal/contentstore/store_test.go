package contentstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	keys  []Key
	sizes []int
}

func (l *recordingListener) CollectionSaved(_ context.Context, key Key, size int) {
	l.keys = append(l.keys, key)
	l.sizes = append(l.sizes, size)
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}
func (failingRepo) Set(context.Context, string, []byte) error { return errors.New("connection refused") }
func (failingRepo) Delete(context.Context, ...string) error   { return errors.New("connection refused") }

func newTestStore(t *testing.T) (*Store, *memory.KeyValueRepository) {
	t.Helper()
	repo := memory.NewKeyValueRepository()
	return New(repo, NewAcknowledger(AckTTL), logger.NewNopLogger()), repo
}

func TestCollectionLoadEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	posts := NewCollection[entity.Post](store, KeyPosts)

	records, err := posts.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCollectionSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	listener := &recordingListener{}
	store.Subscribe(listener)
	posts := NewCollection[entity.Post](store, KeyPosts)

	want := []entity.Post{
		{Id: "a", Title: "First", Tags: []string{"ml"}},
		{Id: "b", Title: "Second", Tags: []string{}},
	}
	require.NoError(t, posts.Save(ctx, want))

	got, err := posts.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Equal(t, SavedMessage, store.Acknowledgment())
	assert.Equal(t, []Key{KeyPosts}, listener.keys)
	assert.Equal(t, []int{2}, listener.sizes)
}

func TestCollectionSaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)
	posts := NewCollection[entity.Post](store, KeyPosts)

	require.NoError(t, posts.Save(ctx, nil))

	raw, found, err := repo.Get(ctx, string(KeyPosts))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "[]", string(raw))
}

func TestCollectionSaveRejectsInvalidRecord(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)
	exps := NewCollection[entity.ExperienceEntry](store, KeyExperiences)

	err := exps.Save(ctx, []entity.ExperienceEntry{{Id: "1", Type: "hobby"}})
	assert.Error(t, err)

	_, found, _ := repo.Get(ctx, string(KeyExperiences))
	assert.False(t, found)
	assert.Empty(t, store.Acknowledgment())
}

func TestCollectionCorruptValueFailsClosed(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"not json":         `{{{`,
		"object not array": `{"id":"1"}`,
		"null":             `null`,
		"missing id":       `[{"title":"no id","type":"work"}]`,
		"unknown type":     `[{"id":"1","type":"volunteer"}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store, repo := newTestStore(t)
			exps := NewCollection[entity.ExperienceEntry](store, KeyExperiences)
			require.NoError(t, repo.Set(ctx, string(KeyExperiences), []byte(raw)))

			records, err := exps.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, records)

			assert.ErrorIs(t, exps.Check(ctx), ErrCorruptStore)
		})
	}
}

func TestCollectionRepositoryErrorPropagates(t *testing.T) {
	store := New(failingRepo{}, NewAcknowledger(AckTTL), logger.NewNopLogger())
	posts := NewCollection[entity.Post](store, KeyPosts)

	_, err := posts.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCorruptStore)

	err = posts.Save(context.Background(), []entity.Post{{Id: "1"}})
	assert.Error(t, err)
	assert.Empty(t, store.Acknowledgment())
}

func TestRecordRoundTripAndRemove(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)

	session := entity.Session{Id: "1", Login: "charchitd", Name: "Charchit Dhawan"}
	require.NoError(t, store.PutRecord(ctx, KeySession, session))
	require.NoError(t, store.PutRecord(ctx, KeyOAuthState, "abc123"))
	assert.Empty(t, store.Acknowledgment())

	var got entity.Session
	found, err := store.GetRecord(ctx, KeySession, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, session, got)

	var state string
	found, err = store.GetRecord(ctx, KeyOAuthState, &state)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "abc123", state)

	require.NoError(t, store.Remove(ctx, AuthKeys...))
	_, found, _ = repo.Get(ctx, string(KeySession))
	assert.False(t, found)
	_, found, _ = repo.Get(ctx, string(KeyOAuthState))
	assert.False(t, found)
}

func TestCorruptRecordReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)
	require.NoError(t, repo.Set(ctx, string(KeySession), []byte(`{"name":"no id or login"}`)))

	var got entity.Session
	found, err := store.GetRecord(ctx, KeySession, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAcknowledgerExpires(t *testing.T) {
	ack := NewAcknowledger(20 * time.Millisecond)
	assert.Empty(t, ack.Current())

	ack.Signal(SavedMessage)
	assert.Equal(t, SavedMessage, ack.Current())

	assert.Eventually(t, func() bool { return ack.Current() == "" }, time.Second, 5*time.Millisecond)
}
