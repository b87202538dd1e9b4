package shipping

import (
	"sync"
	"testing"
)

// Run with -race: the tables are shared read-only across callers.
func TestCalculate_ConcurrentCallers(t *testing.T) {
	const goroutines = 32
	want := Calculate("10001", 35)

	var wg sync.WaitGroup
	errs := make(chan float64, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				_ = Estimate(zoneSamples[Zone(i%zoneCount+1)], float64(n%120))
				if got := Calculate("10001", 35); got != want {
					errs <- got
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Calculate = %v, want %v", got, want)
	}
}
