package irecv

import "testing"

func TestVersionString(t *testing.T) {
	if VersionString() != Version {
		t.Fatalf("VersionString() = %q, want %q", VersionString(), Version)
	}
	if Version == "" {
		t.Fatal("Version should not be empty")
	}
}
