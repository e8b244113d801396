package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemascout/schemascout/internal/cache"
	scouterrors "github.com/schemascout/schemascout/internal/errors"
	"github.com/schemascout/schemascout/internal/metadata"
)

func stubFetcher(rows []metadata.Row, err error) RowFetcher {
	return func(_ context.Context, _ string) ([]metadata.Row, error) {
		return rows, err
	}
}

func catalogRows() []metadata.Row {
	return []metadata.Row{
		{"TABLE_SCHEM": "S", "TABLE_NAME": "USERS", "REMARKS": "User accounts"},
	}
}

func TestLoadFetchesAndParses(t *testing.T) {
	l := New(stubFetcher(catalogRows(), nil), nil)

	tables, columns, err := l.Load(context.Background(), Options{})
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "USERS", tables[0].Name)

	// The same stub rows feed the column query; rows without a column name
	// are skipped
	assert.Empty(t, columns)
}

func TestLoadPropagatesFetchFailure(t *testing.T) {
	fetchErr := errors.New("connection refused")
	l := New(stubFetcher(nil, fetchErr), nil)

	_, _, err := l.Load(context.Background(), Options{})
	require.Error(t, err)
	assert.True(t, scouterrors.IsType(err, scouterrors.ErrTypeFetch))
	assert.ErrorIs(t, err, fetchErr)
}

func TestLoadMockFallback(t *testing.T) {
	l := New(stubFetcher(nil, errors.New("no driver")), nil)

	tables, columns, err := l.Load(context.Background(), Options{
		UseMock: true,
		Limit:   5,
		Offset:  10,
	})
	require.NoError(t, err)

	// Exactly 5 synthetic tables, identifying number starting at 10*100
	require.Len(t, tables, 5)
	assert.Equal(t, "MOCK_TABLE_1000", tables[0].Name)
	assert.NotEmpty(t, columns)
}

func TestLoadCacheFirst(t *testing.T) {
	store := cache.NewStore(t.TempDir(), time.Hour)

	calls := 0
	fetch := func(_ context.Context, _ string) ([]metadata.Row, error) {
		calls++
		return catalogRows(), nil
	}

	l := New(fetch, store)
	opts := Options{UseCache: true}

	_, _, err := l.Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, calls) // table query + column query

	// Second load is served from cache without touching the fetcher
	tables, _, err := l.Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, tables, 1)
	assert.Equal(t, "USERS", tables[0].Name)
}

func TestLoadCacheDisabled(t *testing.T) {
	store := cache.NewStore(t.TempDir(), time.Hour)

	calls := 0
	fetch := func(_ context.Context, _ string) ([]metadata.Row, error) {
		calls++
		return catalogRows(), nil
	}

	l := New(fetch, store)

	_, _, err := l.Load(context.Background(), Options{UseCache: false})
	require.NoError(t, err)

	_, _, err = l.Load(context.Background(), Options{UseCache: false})
	require.NoError(t, err)
	assert.Equal(t, 4, calls)

	// Nothing was saved either
	assert.Nil(t, store.Load("", 0, 0))
}

func TestLoadNoFetcher(t *testing.T) {
	l := New(nil, nil)

	_, _, err := l.Load(context.Background(), Options{})
	require.Error(t, err)
	assert.True(t, scouterrors.IsType(err, scouterrors.ErrTypeFetch))
}

func TestLoadAsyncDeliversOneResult(t *testing.T) {
	l := New(stubFetcher(catalogRows(), nil), nil)

	out := l.LoadAsync(context.Background(), Options{})

	result, ok := <-out
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.Len(t, result.Tables, 1)
	assert.False(t, result.FromCache)

	_, ok = <-out
	assert.False(t, ok, "channel should be closed after one result")
}

func TestLoadAsyncCacheHitIsSynchronous(t *testing.T) {
	store := cache.NewStore(t.TempDir(), time.Hour)
	store.Save("s", []metadata.Table{{Schema: "S", Name: "T"}}, nil, 0, 0)

	blocked := make(chan struct{})
	fetch := func(_ context.Context, _ string) ([]metadata.Row, error) {
		<-blocked // would hang forever if the fetch path ran
		return nil, nil
	}

	l := New(fetch, store)
	out := l.LoadAsync(context.Background(), Options{SchemaFilter: "s", UseCache: true})

	select {
	case result := <-out:
		require.NoError(t, result.Err)
		assert.True(t, result.FromCache)
		assert.Len(t, result.Tables, 1)
	case <-time.After(time.Second):
		t.Fatal("cache hit should be delivered without waiting on the fetcher")
	}
}

func TestLoadAsyncPropagatesError(t *testing.T) {
	l := New(stubFetcher(nil, errors.New("down")), nil)

	result := <-l.LoadAsync(context.Background(), Options{})
	require.Error(t, result.Err)
	assert.True(t, scouterrors.IsType(result.Err, scouterrors.ErrTypeFetch))
}
