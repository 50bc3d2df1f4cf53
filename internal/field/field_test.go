package field

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	assert.Equal(t, 90, Count(900, 900))
	assert.Equal(t, 111, Count(1000, 1000))
	assert.Equal(t, 0, Count(90, 99))
	assert.Equal(t, 0, Count(0, 500))
	assert.Equal(t, 0, Count(-10, 500))
}

func TestNewPopulatesWithinBounds(t *testing.T) {
	f := New(900, 900, rand.New(rand.NewSource(3)))
	assert.Equal(t, 90, f.Len())
	w, h := f.Size()
	assert.Equal(t, 900, w)
	assert.Equal(t, 900, h)
	for _, p := range f.Particles() {
		assert.Equal(t, p.BaseX, p.X)
		assert.Equal(t, p.BaseY, p.Y)
	}
}

func TestResetReplacesParticles(t *testing.T) {
	f := New(1800, 1800, rand.New(rand.NewSource(5)))
	assert.Equal(t, 360, f.Len())

	f.Reset(300, 300)
	assert.Equal(t, 10, f.Len())
	for _, p := range f.Particles() {
		assert.True(t, p.BaseX < 300 && p.BaseY < 300, "stale base position %v,%v", p.BaseX, p.BaseY)
	}

	f.Reset(0, 0)
	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Particles())
}

func TestPointerSnapshot(t *testing.T) {
	var p Pointer
	assert.Equal(t, Point{}, p.Snapshot())

	p.Set(12, 34)
	assert.Equal(t, Point{X: 12, Y: 34}, p.Snapshot())

	// writers only ever store equal pairs from here on
	p.Set(0, 0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				p.Set(v, v)
			}
		}(float64(i))
	}
	for j := 0; j < 1000; j++ {
		s := p.Snapshot()
		assert.Equal(t, s.X, s.Y, "torn read")
	}
	wg.Wait()
}
