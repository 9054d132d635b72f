package codec

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oshokin/easycodec/internal/config"
	"github.com/oshokin/easycodec/internal/logger"
)

// Service transcodes batches of items.
type Service interface {
	// Process transcodes every item of the request. Results keep the request order;
	// items not started before ctx was canceled are absent.
	Process(ctx context.Context, request *ProcessRequest) ([]*Result, error)
	// PrintSummary prints a formatted summary of processing statistics.
	PrintSummary(ctx context.Context)
	// Statistics returns a snapshot of processing statistics.
	Statistics() Statistics
}

// cacheKey identifies a memoized result.
type cacheKey struct {
	// scheme is the codec name.
	scheme string
	// direction is the transcoding direction.
	direction Direction
	// input is the original item.
	input string
}

// ServiceImpl implements Service with a bounded worker pool and an LRU result cache.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// registry resolves scheme names to codecs.
	registry *Registry
	// cache memoizes successful results, nil when disabled.
	cache *lru.Cache[cacheKey, string]
	// stats tracks processing statistics for the current session.
	stats *Statistics
	// statsMutex protects concurrent access to statistics.
	statsMutex *sync.Mutex
}

// NewService creates a transcoding service.
func NewService(cfg *config.Config, registry *Registry) (Service, error) {
	s := &ServiceImpl{
		cfg:        cfg,
		registry:   registry,
		stats:      new(Statistics),
		statsMutex: new(sync.Mutex),
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[cacheKey, string](int(cfg.CacheSize))
		if err != nil {
			return nil, fmt.Errorf("failed to create result cache: %w", err)
		}

		s.cache = cache
	}

	return s, nil
}

// Process transcodes every item of the request.
func (s *ServiceImpl) Process(ctx context.Context, request *ProcessRequest) ([]*Result, error) {
	c, err := s.registry.Lookup(request.Scheme)
	if err != nil {
		return nil, err
	}

	if request.Direction != DirectionEncode && request.Direction != DirectionDecode {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownDirection, request.Direction)
	}

	s.statsMutex.Lock()
	s.stats.Scheme = c.Name()
	s.stats.Direction = request.Direction
	s.stats.StartTime = time.Now()
	s.statsMutex.Unlock()

	ctx = logger.WithKV(ctx, "scheme", c.Name())
	logger.Debugf(ctx, "Processing %d items (%s)", len(request.Inputs), request.Direction)

	results := make([]*Result, len(request.Inputs))

	if s.cfg.MaxConcurrentWorkers <= 1 {
		s.processSequentially(ctx, c, request, results)
	} else {
		s.processConcurrently(ctx, c, request, results)
	}

	s.statsMutex.Lock()
	s.stats.EndTime = time.Now()
	s.statsMutex.Unlock()

	// Items skipped after cancellation leave holes.
	completed := make([]*Result, 0, len(results))

	for _, result := range results {
		if result != nil {
			completed = append(completed, result)
		}
	}

	return completed, ctx.Err()
}

// processSequentially processes items one by one.
func (s *ServiceImpl) processSequentially(ctx context.Context, c Codec, request *ProcessRequest, results []*Result) {
	for i, input := range request.Inputs {
		// Check if context was canceled (CTRL+C pressed) - stop immediately.
		select {
		case <-ctx.Done():
			return
		default:
		}

		results[i] = s.processItem(ctx, c, request.Direction, i, input)
	}
}

// processConcurrently processes items using a worker pool.
func (s *ServiceImpl) processConcurrently(ctx context.Context, c Codec, request *ProcessRequest, results []*Result) {
	// Create a semaphore channel to limit concurrent workers.
	semaphore := make(chan struct{}, s.cfg.MaxConcurrentWorkers)

	var waitGroup sync.WaitGroup

	for index, input := range request.Inputs {
		// Check if context was canceled (CTRL+C pressed) - stop queueing new items.
		select {
		case <-ctx.Done():
			goto waitForCompletion
		default:
		}

		// Acquire semaphore slot (blocks if all workers are busy), unless canceled while waiting.
		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			goto waitForCompletion
		}

		waitGroup.Add(1)

		go func(itemIndex int, item string) {
			defer waitGroup.Done()

			defer func() {
				// Release semaphore slot when done.
				<-semaphore
			}()

			// Each goroutine writes only its own slot.
			results[itemIndex] = s.processItem(ctx, c, request.Direction, itemIndex, item)
		}(index, input)
	}

waitForCompletion:
	// Wait for all in-flight items to complete.
	waitGroup.Wait()
}

// processItem transcodes a single item, consulting and filling the cache.
func (s *ServiceImpl) processItem(
	ctx context.Context,
	c Codec,
	direction Direction,
	index int,
	input string,
) *Result {
	result := &Result{
		Index: index,
		Input: input,
	}

	if limit := s.cfg.ParsedMaxInputSize; limit > 0 && int64(len(input)) > limit {
		result.Err = fmt.Errorf("%w: %d bytes, limit is %d", ErrInputTooLarge, len(input), limit)
	} else {
		result.Output, result.IsCached, result.Err = s.transcode(c, direction, input)
	}

	if result.Err != nil {
		result.Error = result.Err.Error()

		logger.Debugf(ctx, "Item #%d failed: %v", index+1, result.Err)
	}

	s.recordResult(result)

	return result
}

// transcode runs the codec unless the cache already holds the answer.
func (s *ServiceImpl) transcode(c Codec, direction Direction, input string) (string, bool, error) {
	key := cacheKey{
		scheme:    c.Name(),
		direction: direction,
		input:     input,
	}

	if s.cache != nil {
		if output, ok := s.cache.Get(key); ok {
			return output, true, nil
		}
	}

	var (
		output string
		err    error
	)

	if direction == DirectionEncode {
		output, err = c.Encode(input)
	} else {
		output, err = c.Decode(input)
	}

	if err != nil {
		return "", false, err
	}

	if s.cache != nil {
		s.cache.Add(key, output)
	}

	return output, false, nil
}
