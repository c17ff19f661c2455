package metrics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksProviderCallsAndErrors(t *testing.T) {
	rec := NewRecorder()
	ctx := context.Background()
	rec.ObserveProviderCall(ctx, "courtlistener", "search", 10*time.Millisecond, nil)
	rec.ObserveProviderCall(ctx, "courtlistener", "parties", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("courtlistener"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("courtlistener"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("courtlistener"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("courtlistener")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("courtlistener", 5*time.Second)
	rec.RecordRateLimit("courtlistener", 0)

	if got := rec.RateLimitHits("courtlistener"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.Snapshot("courtlistener").LastRetryAfter; got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

// Search enrichment fans out to four concurrent provider calls per request,
// all funneled through one Recorder.
func TestRecorderConcurrentObservations(t *testing.T) {
	rec := NewRecorder()
	ctx := context.Background()

	const goroutines = 4
	const callsEach = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			for j := 0; j < callsEach; j++ {
				var err error
				if i == 0 {
					err = errors.New("boom")
				}
				rec.ObserveProviderCall(ctx, "courtlistener", "search", time.Millisecond, err)
				rec.RecordRateLimit("courtlistener", time.Second)
			}
		}(i)
	}
	wg.Wait()

	snap := rec.Snapshot("courtlistener")
	if snap.Calls != goroutines*callsEach {
		t.Fatalf("expected %d calls, got %d", goroutines*callsEach, snap.Calls)
	}
	if snap.Errors != callsEach {
		t.Fatalf("expected %d errors, got %d", callsEach, snap.Errors)
	}
	if snap.RateLimitHits != goroutines*callsEach {
		t.Fatalf("expected %d rate limit hits, got %d", goroutines*callsEach, snap.RateLimitHits)
	}
}

func TestNilRecorderIsNoOp(t *testing.T) {
	var rec *Recorder
	rec.ObserveProviderCall(context.Background(), "courtlistener", "search", time.Millisecond, nil)
	rec.RecordRateLimit("courtlistener", time.Second)
	rec.RecordExtraction(3, 5, time.Millisecond)

	if got := rec.Snapshot("courtlistener"); got != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", got)
	}
}
