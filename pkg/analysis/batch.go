package analysis

import (
	"sync"

	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

// Outcome is the result of one request of a batch.
type Outcome struct {
	Index   int
	Request Request
	Result  device.Result
	Err     error
}

// RunBatch runs reqs with at most maxConcurrent analyses in flight and
// returns the outcomes in request order.
func RunBatch(reqs []Request, maxConcurrent int) []Outcome {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	outcomes := make([]Outcome, len(reqs))
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for i, req := range reqs {
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			Logger.Printf("batch worker: request %d: %v", i+1, req)

			res, err := Run(req)
			if err != nil {
				Logger.Printf("batch worker: request %d failed: %v", i+1, err)
			}
			outcomes[i] = Outcome{Index: i, Request: req, Result: res, Err: err}
		}()
	}

	wg.Wait()
	return outcomes
}
