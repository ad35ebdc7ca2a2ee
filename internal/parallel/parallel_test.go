package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForVisitsEveryIndexOnce(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cfg  Config
	}{
		{"default", 1000, DefaultConfig()},
		{"sequential", 1000, Sequential()},
		{"small", 10, Config{Workers: 8, MinChunk: 64}},
		{"uneven", 257, Config{Workers: 3, MinChunk: 1}},
		{"zero min chunk", 50, Config{Workers: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]int32, tt.n)
			For(tt.n, tt.cfg, func(i int) {
				atomic.AddInt32(&hits[i], 1)
			})
			for i, h := range hits {
				assert.Equal(t, int32(1), h, "index %d", i)
			}
		})
	}
}

func TestRangeChunks(t *testing.T) {
	var (
		mu     sync.Mutex
		chunks [][2]int
	)
	Range(100, Config{Workers: 4, MinChunk: 10}, func(start, end int) {
		mu.Lock()
		chunks = append(chunks, [2]int{start, end})
		mu.Unlock()
	})

	assert.Len(t, chunks, 4)
	total := 0
	for _, c := range chunks {
		assert.Less(t, c[0], c[1])
		total += c[1] - c[0]
	}
	assert.Equal(t, 100, total)
}

func TestRangeSequentialBelowThreshold(t *testing.T) {
	calls := 0
	Range(100, Config{Workers: 8, MinChunk: 64}, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 100, end)
	})
	assert.Equal(t, 1, calls)
}

func TestRangeEmpty(t *testing.T) {
	Range(0, DefaultConfig(), func(_, _ int) {
		t.Fatal("fn called for empty range")
	})
}
