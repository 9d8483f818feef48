package console

import "testing"

func TestEchoDetached(t *testing.T) {
	if w := Echo(false); w != nil {
		t.Errorf("Echo(false) = %v, want nil", w)
	}
}
