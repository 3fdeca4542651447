package cmd

import "testing"

func TestChecksFailedErrorMessage(t *testing.T) {
	err := &ChecksFailedError{Failed: 3}

	want := "3 domain(s) failed security.txt validation"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
