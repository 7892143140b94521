//go:build integration

package code2pdf

// Integration tests drive real headless Chrome instances, which are
// expensive to launch. They share one ServicePool, set up in TestMain
// and torn down after the run, instead of each test paying the launch
// cost itself.

import (
	"os"
	"testing"
	"time"
)

// renderTimeout bounds each browser-backed operation in these tests.
const renderTimeout = 30 * time.Second

// browserPool is shared by every integration test. Tests only Acquire
// and Release; nothing mutates the pool after TestMain builds it.
var browserPool *ServicePool

func TestMain(m *testing.M) {
	// Auto-size from the host, but never run more than four Chrome
	// instances at once; CI runners fall over beyond that.
	size := ResolvePoolSize(0)
	if size > 4 {
		size = 4
	}
	browserPool = NewServicePool(size, WithTimeout(renderTimeout))

	code := m.Run()

	browserPool.Close()
	os.Exit(code)
}

// acquireService checks a Service out of the shared pool and registers
// its return via t.Cleanup, so a failing test cannot starve the pool.
func acquireService(t *testing.T) *Service {
	t.Helper()
	svc := browserPool.Acquire()
	t.Cleanup(func() { browserPool.Release(svc) })
	return svc
}
