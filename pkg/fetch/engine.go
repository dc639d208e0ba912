// Package fetch provides the font fetch engine with retry support.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/queue"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/rescue"
	"github.com/zeromicro/go-zero/core/syncx"
	"github.com/zeromicro/go-zero/core/threading"
	"golang.org/x/time/rate"
	"maragu.dev/goqite"
)

// Fetcher downloads one font into the bundle. *font.GoogleClient implements it.
type Fetcher interface {
	FetchFont(ctx context.Context, entry font.CatalogEntry, bundleDir, publicDir string) ([]font.EmbedRule, error)
}

// Catalog lists the fonts that may be fetched. *font.Plugin implements it.
type Catalog interface {
	ListFonts() ([]font.CatalogEntry, error)
}

// Config holds fetch engine configuration.
type Config struct {
	BundleDir    string
	PublicDir    string
	MaxRetries   int
	RetryBackoff time.Duration
	MaxBackoff   time.Duration
	RateLimit    int // requests per minute
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BundleDir:    ".",
		PublicDir:    "public/site/google-fonts",
		MaxRetries:   3,
		RetryBackoff: 30 * time.Second,
		MaxBackoff:   30 * time.Minute,
		RateLimit:    30,
	}
}

// Engine runs queued font fetch jobs with retry logic.
type Engine struct {
	config      Config
	queue       *queue.Queue
	catalog     Catalog
	fetcher     Fetcher
	rateLimiter *rate.Limiter
	running     *syncx.AtomicBool

	ctx    context.Context
	cancel context.CancelFunc
	group  *threading.RoutineGroup
}

// NewEngine creates a new fetch engine.
func NewEngine(q *queue.Queue, catalog Catalog, fetcher Fetcher, cfg Config) *Engine {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RateLimit))
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		config:      cfg,
		queue:       q,
		catalog:     catalog,
		fetcher:     fetcher,
		rateLimiter: rate.NewLimiter(limit, 1),
		running:     syncx.NewAtomicBool(),
		ctx:         ctx,
		cancel:      cancel,
		group:       threading.NewRoutineGroup(),
	}
}

// Start starts the fetch engine with the specified number of workers.
func (e *Engine) Start(workers int) {
	if !e.running.CompareAndSwap(false, true) {
		return // Already running
	}

	logx.Infow("Fetch engine started", logx.Field("workers", workers))
	for i := 0; i < workers; i++ {
		e.group.RunSafe(e.worker)
	}
}

// Stop gracefully stops the fetch engine.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return // Already stopped
	}

	logx.Info("Fetch engine stopping, waiting for workers")
	e.cancel()
	e.group.Wait()
	logx.Info("Fetch engine stopped")
}

func (e *Engine) worker() {
	backoff := 100 * time.Millisecond
	const maxBackoff = 5 * time.Second

	for {
		select {
		case <-e.ctx.Done():
			return
		default:
		}

		found, err := e.ProcessNext(e.ctx)
		if err != nil || !found {
			// No work available, back off
			timer := time.NewTimer(backoff)
			select {
			case <-e.ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			backoff = min(backoff*2, maxBackoff)
			e.updateQueueDepth()
			continue
		}
		backoff = 100 * time.Millisecond
	}
}

// ProcessNext receives one job and runs it. It reports whether a job was found.
func (e *Engine) ProcessNext(ctx context.Context) (bool, error) {
	job, msg, err := e.queue.Receive(ctx)
	if err != nil {
		if msg != nil {
			// Undecodable body, drop it
			logx.WithContext(ctx).Errorf("Dropping fetch message: %v", err)
			_ = e.queue.Delete(ctx, msg)
		}
		return false, err
	}
	if job == nil {
		return false, nil
	}

	e.processJob(ctx, job, msg)
	return true, nil
}

func (e *Engine) processJob(ctx context.Context, job *queue.FetchJob, msg *goqite.Message) {
	ctx = logx.ContextWithFields(ctx,
		logx.Field("job_id", job.ID),
		logx.Field("font", job.FontID),
	)

	defer rescue.RecoverCtx(ctx, func() {
		fetchJobsFailed.Inc("panic")
		e.finish(ctx, msg)
		e.queue.MarkFailed(ctx, job.ID, errors.New("panic during fetch"))
	})

	logx.WithContext(ctx).Info("Processing fetch job")
	start := time.Now()

	rules, err := e.fetch(ctx, job.FontID)
	if err != nil {
		e.handleError(ctx, job, msg, err)
		return
	}

	e.finish(ctx, msg)
	if err := e.queue.MarkDone(ctx, job.ID, len(rules)); err != nil {
		logx.WithContext(ctx).Errorf("Failed to mark fetch job done: %v", err)
	}
	fetchJobsDone.Inc()
	fetchDuration.ObserveFloat(time.Since(start).Seconds())

	logx.WithContext(ctx).Infow("Font fetched", logx.Field("rules", len(rules)))
}

// FetchNow fetches a font immediately without queueing.
func (e *Engine) FetchNow(ctx context.Context, fontID string) ([]font.EmbedRule, error) {
	return e.fetch(ctx, fontID)
}

func (e *Engine) fetch(ctx context.Context, fontID string) ([]font.EmbedRule, error) {
	catalog, err := e.catalog.ListFonts()
	if err != nil {
		return nil, err
	}
	entry, ok := font.FindFont(catalog, fontID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", font.ErrUnknownFont, fontID)
	}

	if err := e.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	return e.fetcher.FetchFont(ctx, entry, e.config.BundleDir, e.config.PublicDir)
}

func (e *Engine) handleError(ctx context.Context, job *queue.FetchJob, msg *goqite.Message, err error) {
	attempts := 1
	if tracked, terr := e.queue.Get(ctx, job.ID); terr == nil {
		attempts = int(tracked.Attempts) + 1
	}

	maxAttempts := job.MaxAttempts
	if e.config.MaxRetries > 0 && e.config.MaxRetries < maxAttempts {
		maxAttempts = e.config.MaxRetries
	}

	reason := "transient"
	if isPermanentFailure(err) {
		reason = "permanent"
	}

	if reason == "permanent" || attempts >= maxAttempts {
		e.finish(ctx, msg)
		e.queue.MarkFailed(ctx, job.ID, err)
		fetchJobsFailed.Inc(reason)
		logx.WithContext(ctx).Errorf("Font fetch failed permanently: %v", err)
		return
	}

	backoff := e.calculateBackoff(attempts)
	if xerr := e.queue.Extend(ctx, msg, backoff); xerr != nil {
		logx.WithContext(ctx).Errorf("Failed to delay fetch retry: %v", xerr)
	}
	e.queue.MarkRetry(ctx, job.ID, backoff, err)
	fetchJobsRetried.Inc()

	logx.WithContext(ctx).Infof("Font fetch retrying in %s: %v", backoff, err)
}

// finish removes the job's message from the queue.
func (e *Engine) finish(ctx context.Context, msg *goqite.Message) {
	if err := e.queue.Delete(ctx, msg); err != nil {
		logx.WithContext(ctx).Errorf("Failed to delete fetch message: %v", err)
	}
}

func (e *Engine) calculateBackoff(attempts int) time.Duration {
	backoff := e.config.RetryBackoff * time.Duration(math.Pow(2, float64(attempts-1)))
	if e.config.MaxBackoff > 0 && backoff > e.config.MaxBackoff {
		return e.config.MaxBackoff
	}
	return backoff
}

// isPermanentFailure reports whether retrying cannot help.
func isPermanentFailure(err error) bool {
	if errors.Is(err, font.ErrUnknownFont) {
		return true
	}
	var se *font.StatusError
	return errors.As(err, &se) && se.Permanent()
}

// updateQueueDepth refreshes the queue depth gauge from current stats.
func (e *Engine) updateQueueDepth() {
	stats, err := e.queue.Stats(e.ctx)
	if err != nil {
		return
	}
	for status, count := range stats {
		queueDepth.Set(float64(count), status)
	}
}
