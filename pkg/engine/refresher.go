package engine

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Refresher runs a full refresh cycle: every stop's pipeline concurrently,
// joined before anything is returned. Overlapping triggers for the same stop
// set (the periodic timer firing while a config edit already kicked off a
// cycle) coalesce into a single in-flight batch instead of issuing duplicate
// provider calls.
type Refresher struct {
	proc  *Processor
	group singleflight.Group
}

func NewRefresher(proc *Processor) *Refresher {
	return &Refresher{proc: proc}
}

// Refresh computes a fresh result for every stop. The returned slice is
// ordered like the input and complete: a slow or failed stop contributes a
// null-filled result rather than stalling or aborting its siblings.
func (r *Refresher) Refresh(ctx context.Context, stops []StopConfig, now time.Time) []StopResult {
	v, _, _ := r.group.Do(stopSetKey(stops), func() (interface{}, error) {
		return r.refreshAll(ctx, stops, now), nil
	})
	return v.([]StopResult)
}

func (r *Refresher) refreshAll(ctx context.Context, stops []StopConfig, now time.Time) []StopResult {
	results := make([]StopResult, len(stops))

	var wg sync.WaitGroup
	for i := range stops {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.proc.Process(ctx, stops[i], now)
		}(i)
	}
	wg.Wait()

	return results
}

// stopSetKey identifies a stop set for coalescing. Ordering is normalized so
// the same stops always share one in-flight cycle.
func stopSetKey(stops []StopConfig) string {
	ids := make([]string, len(stops))
	for i, s := range stops {
		ids[i] = s.ID
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}
