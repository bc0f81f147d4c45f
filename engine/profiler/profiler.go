package profiler

import (
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Stats is one profiling sample.
type Stats struct {
	// FPS is the average frame rate over the sample window.
	FPS float64

	// HeapMB is the live heap in MiB.
	HeapMB float64

	// AllocRateMB is the heap allocation rate in MiB per second.
	AllocRateMB float64

	// GCCount is the total number of completed collections.
	GCCount uint32

	// LastPauseUs and MaxPauseUs are GC pause times in microseconds.
	LastPauseUs uint64
	MaxPauseUs  uint64

	// SysMB is the memory obtained from the OS in MiB.
	SysMB float64
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the logger at a configurable interval.
type Profiler struct {
	mu *sync.Mutex

	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats

	now    func() time.Time
	logger *zap.Logger
}

// ProfilerOption configures a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are sampled and logged. Values <= 0 are ignored.
//
// Parameters:
//   - interval: the sample interval
//
// Returns:
//   - ProfilerOption: the option
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithLogger sets the logger stats are written to. A nil logger is ignored.
func WithLogger(logger *zap.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		mu:             &sync.Mutex{},
		updateInterval: time.Second,
		now:            time.Now,
		logger:         zap.NewNop(),
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	s := Stats{
		FPS:     float64(p.frameCount) / elapsed.Seconds(),
		HeapMB:  float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:   float64(p.memStats.Sys) / 1024 / 1024,
		GCCount: p.memStats.NumGC,
	}
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	s.AllocRateMB = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	if gcCount := s.GCCount; gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses.
		s.LastPauseUs = p.memStats.PauseNs[(gcCount+255)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			s.MaxPauseUs = max(s.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.logger.Info("frame stats",
		zap.Float64("fps", s.FPS),
		zap.Float64("heap_mb", s.HeapMB),
		zap.Float64("alloc_rate_mb", s.AllocRateMB),
		zap.Uint32("gc", s.GCCount),
		zap.Uint64("gc_last_us", s.LastPauseUs),
		zap.Uint64("gc_max_us", s.MaxPauseUs),
		zap.Float64("sys_mb", s.SysMB))

	p.last = s
	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recent sample, or zero Stats before the first.
func (p *Profiler) Last() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
