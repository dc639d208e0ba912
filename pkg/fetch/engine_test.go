package fetch

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/joeblew999/plat-googlefonts/internal/model"
	"github.com/joeblew999/plat-googlefonts/pkg/db"
	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCatalog []font.CatalogEntry

func (c staticCatalog) ListFonts() ([]font.CatalogEntry, error) {
	return c, nil
}

// fakeFetcher returns errs in order, then succeeds.
type fakeFetcher struct {
	calls atomic.Int32
	errs  []error
	panic bool
}

func (f *fakeFetcher) FetchFont(_ context.Context, entry font.CatalogEntry, _, _ string) ([]font.EmbedRule, error) {
	n := int(f.calls.Add(1))
	if f.panic {
		panic("boom")
	}
	if n <= len(f.errs) {
		return nil, f.errs[n-1]
	}
	return []font.EmbedRule{{Subset: "latin", Font: "@font-face{src:url(./fonts/" + entry.ID + "/a.woff2)}"}}, nil
}

var testCatalog = staticCatalog{
	{ID: "roboto", Family: "Roboto"},
	{ID: "lato", Family: "Lato"},
}

func newTestEngine(t *testing.T, fetcher Fetcher) (*Engine, *queue.Queue) {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	q, err := queue.NewQueue(d.DB, d.SqlConn(), "fetch-test")
	require.NoError(t, err)

	cfg := Config{
		BundleDir:    t.TempDir(),
		PublicDir:    t.TempDir(),
		MaxRetries:   3,
		RetryBackoff: time.Hour,
		MaxBackoff:   4 * time.Hour,
		RateLimit:    0,
	}
	return NewEngine(q, testCatalog, fetcher, cfg), q
}

func TestEngineProcessNext(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		e, _ := newTestEngine(t, &fakeFetcher{})
		found, err := e.ProcessNext(ctx)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Success", func(t *testing.T) {
		f := &fakeFetcher{}
		e, q := newTestEngine(t, f)

		id, err := q.Enqueue(ctx, queue.FetchJob{FontID: "roboto"})
		require.NoError(t, err)

		found, err := e.ProcessNext(ctx)
		require.NoError(t, err)
		assert.True(t, found)

		job, err := q.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusDone, job.Status)
		assert.EqualValues(t, 1, job.Rules)

		found, err = e.ProcessNext(ctx)
		require.NoError(t, err)
		assert.False(t, found, "finished job must leave the queue")
	})

	t.Run("TransientFailureRetries", func(t *testing.T) {
		f := &fakeFetcher{errs: []error{&font.StatusError{URL: "u", Code: http.StatusBadGateway}}}
		e, q := newTestEngine(t, f)

		id, err := q.Enqueue(ctx, queue.FetchJob{FontID: "lato"})
		require.NoError(t, err)

		found, err := e.ProcessNext(ctx)
		require.NoError(t, err)
		assert.True(t, found)

		job, err := q.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusRetrying, job.Status)
		assert.EqualValues(t, 1, job.Attempts)
		assert.Contains(t, model.NullStringValue(job.Error), "502")

		// Hidden until the backoff expires.
		found, err = e.ProcessNext(ctx)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("PermanentFailure", func(t *testing.T) {
		f := &fakeFetcher{errs: []error{&font.StatusError{URL: "u", Code: http.StatusNotFound}}}
		e, q := newTestEngine(t, f)

		id, err := q.Enqueue(ctx, queue.FetchJob{FontID: "lato"})
		require.NoError(t, err)

		_, err = e.ProcessNext(ctx)
		require.NoError(t, err)

		job, err := q.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusFailed, job.Status)
	})

	t.Run("UnknownFont", func(t *testing.T) {
		f := &fakeFetcher{}
		e, q := newTestEngine(t, f)

		id, err := q.Enqueue(ctx, queue.FetchJob{FontID: "comic-neue"})
		require.NoError(t, err)

		_, err = e.ProcessNext(ctx)
		require.NoError(t, err)

		job, err := q.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusFailed, job.Status)
		assert.Contains(t, model.NullStringValue(job.Error), "comic-neue")
		assert.EqualValues(t, 0, f.calls.Load())
	})

	t.Run("LastAttempt", func(t *testing.T) {
		f := &fakeFetcher{errs: []error{errors.New("connection reset")}}
		e, q := newTestEngine(t, f)

		id, err := q.Enqueue(ctx, queue.FetchJob{FontID: "roboto", MaxAttempts: 1})
		require.NoError(t, err)

		_, err = e.ProcessNext(ctx)
		require.NoError(t, err)

		job, err := q.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusFailed, job.Status)
	})

	t.Run("Panic", func(t *testing.T) {
		e, q := newTestEngine(t, &fakeFetcher{panic: true})

		id, err := q.Enqueue(ctx, queue.FetchJob{FontID: "roboto"})
		require.NoError(t, err)

		found, err := e.ProcessNext(ctx)
		require.NoError(t, err)
		assert.True(t, found)

		job, err := q.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusFailed, job.Status)
	})
}

func TestEngineFetchNow(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t, &fakeFetcher{})

	rules, err := e.FetchNow(ctx, "roboto")
	require.NoError(t, err)
	require.Len(t, rules, 1)

	_, err = e.FetchNow(ctx, "comic-neue")
	assert.ErrorIs(t, err, font.ErrUnknownFont)
}

func TestEngineStartStop(t *testing.T) {
	e, _ := newTestEngine(t, &fakeFetcher{})
	e.Start(2)
	e.Start(2)
	e.Stop()
	e.Stop()
}

func TestEngineStopInterruptsIdleBackoff(t *testing.T) {
	e, _ := newTestEngine(t, &fakeFetcher{})
	e.Start(1)

	// Let the idle backoff grow past a second.
	time.Sleep(1600 * time.Millisecond)

	start := time.Now()
	e.Stop()
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestCalculateBackoff(t *testing.T) {
	e := &Engine{config: Config{RetryBackoff: time.Minute, MaxBackoff: 5 * time.Minute}}
	assert.Equal(t, time.Minute, e.calculateBackoff(1))
	assert.Equal(t, 2*time.Minute, e.calculateBackoff(2))
	assert.Equal(t, 4*time.Minute, e.calculateBackoff(3))
	assert.Equal(t, 5*time.Minute, e.calculateBackoff(4))
}

func TestIsPermanentFailure(t *testing.T) {
	assert.True(t, isPermanentFailure(font.ErrUnknownFont))
	assert.True(t, isPermanentFailure(&font.StatusError{Code: http.StatusForbidden}))
	assert.False(t, isPermanentFailure(&font.StatusError{Code: http.StatusServiceUnavailable}))
	assert.False(t, isPermanentFailure(errors.New("timeout")))
}
