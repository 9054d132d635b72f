package codec

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/easycodec/internal/logger"
)

// maxErrorInputLength is the longest input echoed back in the error summary.
const maxErrorInputLength = 40

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// shorten truncates s to maxErrorInputLength runes, marking the cut with an ellipsis.
func shorten(s string) string {
	runes := []rune(s)
	if len(runes) <= maxErrorInputLength {
		return s
	}

	return string(runes[:maxErrorInputLength]) + "…"
}

// recordResult adds the outcome of one item to the statistics.
func (s *ServiceImpl) recordResult(result *Result) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.ItemsProcessed++
	s.stats.BytesIn += int64(len(result.Input))

	if result.IsCached {
		s.stats.CacheHits++
	}

	if result.Err != nil {
		s.stats.ItemsFailed++
		s.stats.Errors = append(s.stats.Errors, ItemError{
			Index:        result.Index,
			Input:        shorten(result.Input),
			ErrorMessage: result.Err.Error(),
		})

		return
	}

	s.stats.ItemsSucceeded++
	s.stats.BytesOut += int64(len(result.Output))
}

// Statistics returns a snapshot of processing statistics.
func (s *ServiceImpl) Statistics() Statistics {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	snapshot := *s.stats
	snapshot.Errors = append([]ItemError(nil), s.stats.Errors...)

	// Concurrent workers record errors out of order.
	slices.SortFunc(snapshot.Errors, func(a, b ItemError) int {
		return cmp.Compare(a.Index, b.Index)
	})

	return snapshot
}

// PrintSummary prints a formatted summary of processing statistics.
func (s *ServiceImpl) PrintSummary(ctx context.Context) {
	stats := s.Statistics()

	// If nothing was processed, don't print summary.
	if stats.ItemsProcessed == 0 {
		return
	}

	// Check if the context was canceled (CTRL+C or timeout).
	wasInterrupted := ctx.Err() != nil

	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")

	if wasInterrupted {
		logger.Infof(ctx, "           %s %s SUMMARY (Interrupted)", stats.Scheme, stats.Direction)
	} else {
		logger.Infof(ctx, "                  %s %s SUMMARY", stats.Scheme, stats.Direction)
	}

	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
	logger.Infof(ctx, "Items:      %d total", stats.ItemsProcessed)
	logger.Infof(ctx, "  Succeeded: %d", stats.ItemsSucceeded)

	if stats.ItemsFailed > 0 {
		logger.Infof(ctx, "  Failed:    %d", stats.ItemsFailed)
	}

	if stats.CacheHits > 0 {
		logger.Infof(ctx, "  Cached:    %d", stats.CacheHits)
	}

	//nolint:gosec // Sizes are never negative.
	logger.Infof(ctx, "Data:       %s in, %s out",
		humanize.Bytes(uint64(stats.BytesIn)), humanize.Bytes(uint64(stats.BytesOut)))
	logger.Infof(ctx, "Duration:   %s", formatDuration(stats.EndTime.Sub(stats.StartTime)))

	if len(stats.Errors) > 0 {
		logger.Info(ctx, "───────────────────────────────────────────────────────────────")
		logger.Info(ctx, "Errors:")

		for _, itemErr := range stats.Errors {
			logger.Infof(ctx, "  #%d %q: %s", itemErr.Index+1, itemErr.Input, itemErr.ErrorMessage)
		}
	}

	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
}
