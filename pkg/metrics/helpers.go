package metrics

import (
	"errors"
	"strings"

	"github.com/fastygo/pricing/domain"
)

func RecordCacheHit(kind string) {
	CacheHits.WithLabelValues(kind).Inc()
}

func RecordCacheMiss(kind string) {
	CacheMisses.WithLabelValues(kind).Inc()
}

func RecordCacheError(operation string) {
	CacheErrors.WithLabelValues(operation).Inc()
}

func RecordCacheStaleWrite(kind string) {
	CacheStaleWrites.WithLabelValues(kind).Inc()
}

func RecordPriceCalculations(adj domain.PricingAdjustment, n int) {
	if n <= 0 {
		return
	}
	PriceCalculations.
		WithLabelValues(string(adj.AdjustmentType), string(adj.AdjustmentIncrement)).
		Add(float64(n))
}

// RecordValidationFailure counts a rejected adjustment under a stable reason label.
func RecordValidationFailure(err error) {
	ValidationFailures.WithLabelValues(validationReason(err)).Inc()
}

func validationReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidBasePrice):
		return "invalid_base_price"
	case errors.Is(err, domain.ErrInvalidAdjustment):
		return "invalid_adjustment"
	case errors.Is(err, domain.ErrInvalidAdjustmentValue):
		return "invalid_adjustment_value"
	case errors.Is(err, domain.ErrPercentageOutOfRange):
		return "percentage_out_of_range"
	case errors.Is(err, domain.ErrResultWouldBeNegative):
		return "result_would_be_negative"
	default:
		return "other"
	}
}

// NormalizePath bounds the cardinality of the path label for unmatched routes.
func NormalizePath(path string) string {
	if path == "" {
		return "unmatched"
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if len(path) > 100 {
		path = path[:100]
	}
	return path
}
