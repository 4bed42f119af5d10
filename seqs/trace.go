package seqs

import (
	"iter"

	"go.uber.org/zap"
)

// Traced passes the elements of seq through unchanged, logging each one at debug level.
// When traversal ends it logs whether seq was exhausted or the consumer stopped early.
// A nil logger disables logging.
func Traced[T any](seq iter.Seq[T], logger *zap.Logger, name string) iter.Seq[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("seq", name))
	return func(yield func(T) bool) {
		index := 0
		for v := range seq {
			logger.Debug("yield", zap.Int("index", index), zap.Any("value", v))
			index++
			if !yield(v) {
				logger.Debug("stopped", zap.Int("count", index))
				return
			}
		}
		logger.Debug("exhausted", zap.Int("count", index))
	}
}
