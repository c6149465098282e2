package evaluator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarrierReleasesAllParties(t *testing.T) {
	const parties = 5
	const cycles = 20

	b := newBarrier(parties)
	var wg sync.WaitGroup
	counters := make([]int, parties)

	for i := 0; i < parties; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for c := 0; c < cycles; c++ {
				b.Wait()
				counters[idx] = c + 1
			}
		}(i)
	}

	wg.Wait()
	for _, c := range counters {
		assert.Equal(t, cycles, c)
	}
}
