package frames

import (
	"log/slog"
	"time"
)

// debugStats holds per-tick timing and drawing metrics.
// Only populated when Config.Debug is true.
type debugStats struct {
	drawTime time.Duration
	opCount  int
	maxDepth int
}

// debugMaxTreeDepth is the push depth above which a tick logs a warning.
const debugMaxTreeDepth = 32

// debugLog reports the stats of one draw pass.
func (s *Scene) debugLog(stats debugStats) {
	s.log.Debug("draw",
		slog.String("sketch", s.sketch.Name()),
		slog.Uint64("tick", s.tick),
		slog.Duration("time", stats.drawTime),
		slog.Int("ops", stats.opCount),
		slog.Int("depth", stats.maxDepth),
	)
	if stats.maxDepth > debugMaxTreeDepth {
		s.log.Warn("frame tree is deep",
			slog.Int("depth", stats.maxDepth),
			slog.Int("threshold", debugMaxTreeDepth),
		)
	}
}

// debugMaxChildCount is the child count above which debug mode warns.
const debugMaxChildCount = 1000

// debugCheckChildCount warns when f has an unusually large number of
// children.
func debugCheckChildCount(log *slog.Logger, f *Frame) {
	if len(f.children) > debugMaxChildCount {
		log.Warn("frame has many children",
			slog.String("frame", f.Name),
			slog.Int("children", len(f.children)),
			slog.Int("threshold", debugMaxChildCount),
		)
	}
}

// CheckTree walks root and logs structural warnings when Config.Debug is set.
// Sketches call it once after building their frames.
func (s *Scene) CheckTree(root *Frame) {
	if !s.cfg.Debug {
		return
	}
	root.Walk(func(f *Frame, depth int) bool {
		debugCheckChildCount(s.log, f)
		if depth > debugMaxTreeDepth {
			s.log.Warn("frame tree is deep",
				slog.String("frame", f.Name),
				slog.Int("depth", depth),
				slog.Int("threshold", debugMaxTreeDepth),
			)
			return false
		}
		return true
	})
}
