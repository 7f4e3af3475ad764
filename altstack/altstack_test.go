package altstack

import (
	"testing"

	"github.com/joeycumines/go-corostack"
)

func TestNew_usableSizeAsCoroutineStack(t *testing.T) {
	s, err := New(corostack.STACK_MINIMUM)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	b := s.Bytes()
	if len(b) < corostack.STACK_MINIMUM {
		t.Fatalf("Bytes() len = %d, want >= %d", len(b), corostack.STACK_MINIMUM)
	}

	// Exercise the buffer as an actual coroutine stack.
	co := corostack.New(b, func(c corostack.Control[int, string]) (corostack.Finished[string], error) {
		c, err := c.Yield(1)
		if err != nil {
			return corostack.Finished[string]{}, err
		}
		return c.Done("ok")
	})
	defer co.Close()

	st := co.Resume()
	if st.Done || st.Yield != 1 {
		t.Fatalf("Resume() = %+v", st)
	}
	st = co.Resume()
	if !st.Done || st.Return != "ok" {
		t.Fatalf("Resume() = %+v", st)
	}
}

func TestNew_rejectsNonPositiveSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("New(0) expected an error")
	}
	if _, err := New(-1); err == nil {
		t.Fatal("New(-1) expected an error")
	}
}

func TestClose_idempotent(t *testing.T) {
	s, err := New(4096)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("first Close() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
}
