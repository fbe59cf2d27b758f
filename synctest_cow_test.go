package xgxresult

import (
	"testing"
	"testing/synctest"
)

// NOTE: these tests run inside a synctest bubble (Go 1.25) so concurrent
// derivation from one shared Error is scheduled deterministically.

// TestCOW_ConcurrentWrap_Synctest validates that deriving new Errors from a
// shared base never mutates the base, even from many goroutines.
func TestCOW_ConcurrentWrap_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		base := WrapData(CodeNotFound.Err(), "lookup", "tenant-acme")
		baseReport := base.String()
		baseHash := base.Hash()

		const N = 64
		type result struct {
			gid int
			err Error
		}
		results := make(chan result, N)

		for i := range N {
			go func() {
				derived := WrapData(base, "concurrent", i)
				back := FromError(derived.AsError())
				results <- result{gid: i, err: back}
			}()
		}
		synctest.Wait()

		seen := make([]bool, N)
		for range N {
			r := <-results
			seen[r.gid] = true
			if got, ok := FindData[int](r.err); !ok || got != r.gid {
				t.Fatalf("derived data mismatch: got=%v want=%d", got, r.gid)
			}
			inner, ok := r.err.InnerError()
			if !ok || !inner.Equal(base) {
				t.Fatalf("derived error lost its base: %s", r.err)
			}
		}
		for i, ok := range seen {
			if !ok {
				t.Fatalf("missing result for gid=%d", i)
			}
		}
		if base.String() != baseReport || base.Hash() != baseHash {
			t.Fatalf("base error mutated:\n%s", base)
		}
	})
}

// TestCOW_SharedResult_Synctest reads one Of value from many goroutines.
func TestCOW_SharedResult_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		shared := Failure[int](Wrap(FromEnum(StatusConflict), "update"))

		const N = 32
		done := make(chan bool, N)
		for range N {
			go func() {
				_, isErr := shared.GetError()
				c, _ := shared.CompareTo(Success(1))
				done <- isErr && c == 1 && HasEnum(shared.ErrorOrZero(), StatusConflict)
			}()
		}
		synctest.Wait()

		for range N {
			if !<-done {
				t.Fatalf("concurrent reader observed an inconsistent result")
			}
		}
	})
}
