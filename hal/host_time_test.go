//go:build !tinygo

package hal

import (
	"testing"
	"time"
)

func drain(ch <-chan uint64) (last uint64, n int) {
	for {
		select {
		case v := <-ch:
			last = v
			n++
		default:
			return last, n
		}
	}
}

func TestHostTimeStep(t *testing.T) {
	now := time.Unix(100, 0)
	ht := newHostTimeWithClock(func() time.Time { return now })

	ht.step(1)
	last, n := drain(ht.Ticks())
	if n != 1 || last != 1 {
		t.Fatalf("first step: last=%d n=%d", last, n)
	}

	now = now.Add(500 * time.Microsecond)
	ht.step(1)
	if _, n := drain(ht.Ticks()); n != 0 {
		t.Fatalf("sub-tick step produced %d ticks", n)
	}

	now = now.Add(16*time.Millisecond + 600*time.Microsecond) // 17.1ms since first step
	ht.step(1)
	last, n = drain(ht.Ticks())
	if n != 17 || last != 18 {
		t.Fatalf("after 17.1ms: last=%d n=%d", last, n)
	}
}
