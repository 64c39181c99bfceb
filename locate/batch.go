package locate

import "sync"

// SolveBatch evaluates independent scenarios concurrently and returns
// their outcomes in input order.
//
// Each request is an isolated run: its own origin, its own model, its
// own solver state — nothing is shared between goroutines except the
// read-only request slice and disjoint result slots, so no locking is
// needed. workers < 1 is clamped to 1; workers above len(reqs) are
// capped.
//
// Complexity: O(Σnᵢ) total work over min(workers, len(reqs)) goroutines.
func SolveBatch(reqs []Request, workers int) []Outcome {
	out := make([]Outcome, len(reqs))
	if len(reqs) == 0 {
		return out
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}

	// Fan requests out by index over a shared channel; each worker
	// writes only to its own slots in out.
	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				out[i].Result, out[i].Err = solveRequest(reqs[i])
			}
		}()
	}

	for i := range reqs {
		idx <- i
	}
	close(idx)
	wg.Wait()

	return out
}

// solveRequest adapts a batch Request to a Solve call.
func solveRequest(r Request) (Result, error) {
	if r.Street != nil {
		return Solve(r.Origin, r.Amenities, WithStreet(r.Street.From, r.Street.To))
	}

	return Solve(r.Origin, r.Amenities)
}
