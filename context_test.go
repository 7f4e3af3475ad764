package corostack

import "testing"

func TestContextRecord_transferRoundTrip(t *testing.T) {
	var cr contextRecord[string, int]

	cr.putYielded("hello")
	st := cr.takeState()
	if st.Done || st.Yield != "hello" {
		t.Fatalf("takeState() = %+v, want Yield hello", st)
	}

	cr.clearTransfer()
	cr.putComplete(7)
	st = cr.takeState()
	if !st.Done || st.Return != 7 {
		t.Fatalf("takeState() = %+v, want Done with Return 7", st)
	}
}

func TestContextRecord_takeStateWithNoTransferPanics(t *testing.T) {
	var cr contextRecord[string, int]
	cr.clearTransfer()

	defer func() {
		if recover() == nil {
			t.Fatal("expected takeState to panic when no transfer occurred")
		}
	}()
	cr.takeState()
}
