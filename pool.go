package code2pdf

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing bounds. Every pooled Service owns a headless Chrome
// instance, so the cap is about memory, not goroutines.
const (
	// MinPoolSize guarantees progress even on a single-core host.
	MinPoolSize = 1

	// MaxPoolSize bounds concurrent Chrome instances (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor reserves cores for Chrome's own child processes.
	cpuDivisor = 2
)

// ServicePool hands out Service instances for converting several project
// roots in parallel. Instances are spawned on demand, so a pool sized
// for eight projects costs nothing until the eighth Acquire. Options
// given at construction are applied to every spawned Service.
type ServicePool struct {
	capacity int
	opts     []Option

	idle chan *Service

	mu      sync.Mutex
	all     []*Service
	spawned int
	closed  bool
}

// NewServicePool creates a pool that spawns up to n Service instances.
// Each instance is created with opts, so WithTimeout and friends apply
// uniformly across the pool. A non-positive n is treated as 1.
func NewServicePool(n int, opts ...Option) *ServicePool {
	if n < 1 {
		n = 1
	}
	return &ServicePool{
		capacity: n,
		opts:     opts,
		idle:     make(chan *Service, n),
	}
}

// Acquire returns a Service, preferring an idle one, spawning a new one
// while under capacity, and blocking on a Release otherwise.
func (p *ServicePool) Acquire() *Service {
	select {
	case svc := <-p.idle:
		return svc
	default:
	}

	if svc := p.spawn(); svc != nil {
		return svc
	}

	return <-p.idle
}

// spawn creates a new Service if the pool is under capacity, nil otherwise.
// New is called outside the lock: it may launch a browser lazily, but even
// constructing the pipeline stages is not something to serialize on.
func (p *ServicePool) spawn() *Service {
	p.mu.Lock()
	if p.spawned >= p.capacity {
		p.mu.Unlock()
		return nil
	}
	p.spawned++
	p.mu.Unlock()

	svc := New(p.opts...)

	p.mu.Lock()
	p.all = append(p.all, svc)
	p.mu.Unlock()

	return svc
}

// Release puts a Service back into the idle set. Releasing into a closed
// pool is a no-op; Close already tore the service down.
func (p *ServicePool) Release(svc *Service) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return
	}

	p.idle <- svc
}

// Close shuts down every spawned Service, idle or not, and reports the
// joined errors. Safe to call more than once.
func (p *ServicePool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.idle)
	all := p.all
	p.mu.Unlock()

	var errs []error
	for _, svc := range all {
		if err := svc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the maximum number of Service instances the pool will spawn.
func (p *ServicePool) Size() int {
	return p.capacity
}

// ResolvePoolSize maps a worker count to a pool size: an explicit count
// is taken as-is, zero derives one from GOMAXPROCS (container-aware via
// automaxprocs) clamped to [MinPoolSize, MaxPoolSize].
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0) / cpuDivisor
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
