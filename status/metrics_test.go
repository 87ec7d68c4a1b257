package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomicFloatSmooth(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 10.0, f.Smooth(10, 0.5))
	assert.Equal(t, 15.0, f.Smooth(20, 0.5))

	f.Set(2)
	assert.Equal(t, 2.0, f.Get())
}

func TestMetricMapCachesPointers(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("frame_ms")
	assert.Same(t, a, m.Get("frame_ms"))
	assert.Equal(t, 1, m.Count())
}

func TestRegistryConcurrentWrites(t *testing.T) {
	r := NewRegistry()
	tris := r.Ints.Get("tris")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				tris.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(800), tris.Load())
}

func TestRegistryFormat(t *testing.T) {
	r := NewRegistry()
	r.Floats.Get("frame_ms").Set(16.25)
	r.Ints.Get("tris").Store(42)
	r.Ints.Get("balls").Store(3)

	assert.Equal(t, "balls:3 tris:42 frame_ms:16.2", r.Format())
	assert.Equal(t, map[string]float64{"balls": 3, "tris": 42, "frame_ms": 16.25}, r.Snapshot())
}
