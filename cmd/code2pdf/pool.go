package main

import (
	code2pdf "github.com/alnah/go-code2pdf"
)

// servicePool adapts code2pdf.ServicePool to the CLI's Pool interface so
// tests can substitute fakes that never launch a browser.
type servicePool struct {
	inner *code2pdf.ServicePool
}

// newServicePool creates a pool with capacity for n service instances.
// Options are forwarded to every service the pool spawns.
func newServicePool(n int, opts ...code2pdf.Option) *servicePool {
	return &servicePool{inner: code2pdf.NewServicePool(n, opts...)}
}

// Compile-time check that servicePool implements Pool.
var _ Pool = (*servicePool)(nil)

// Acquire gets a service from the pool, creating one if needed.
func (p *servicePool) Acquire() Converter {
	return p.inner.Acquire()
}

// Release returns a service to the pool.
func (p *servicePool) Release(svc Converter) {
	if s, ok := svc.(*code2pdf.Service); ok {
		p.inner.Release(s)
	}
}

// Size returns the pool capacity.
func (p *servicePool) Size() int {
	return p.inner.Size()
}

// Close releases all browser resources.
func (p *servicePool) Close() error {
	return p.inner.Close()
}
