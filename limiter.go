package showcase

import (
	"sync"
	"time"
)

// RenderLimiter caps how many placeholder images one IP may have rendered
// per window. Cached sizes are served without consulting it.
type RenderLimiter struct {
	mu      sync.Mutex
	renders map[string][]time.Time
	max     int
	window  time.Duration
	now     func() time.Time
}

// NewRenderLimiter creates a RenderLimiter that allows max renders per window.
func NewRenderLimiter(max int, window time.Duration) *RenderLimiter {
	l := &RenderLimiter{
		renders: make(map[string][]time.Time),
		max:     max,
		window:  window,
		now:     time.Now,
	}
	go l.cleanup()
	return l
}

func (l *RenderLimiter) cleanup() {
	ticker := time.NewTicker(l.window)
	for range ticker.C {
		l.mu.Lock()
		cutoff := l.now().Add(-l.window)
		for ip := range l.renders {
			if kept := l.prune(ip, cutoff); len(kept) == 0 {
				delete(l.renders, ip)
			}
		}
		l.mu.Unlock()
	}
}

// prune drops hits older than cutoff. Callers hold l.mu.
func (l *RenderLimiter) prune(ip string, cutoff time.Time) []time.Time {
	hits := l.renders[ip]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.renders[ip] = kept
	return kept
}

// Allow reports whether ip may render now and records the render if so.
func (l *RenderLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.prune(ip, now.Add(-l.window))) >= l.max {
		return false
	}
	l.renders[ip] = append(l.renders[ip], now)
	return true
}
