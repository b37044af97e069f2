package irecv

import "testing"

func TestModeRecognized(t *testing.T) {
	for _, m := range []Mode{ModeRecovery1, ModeRecovery2, ModeRecovery3, ModeRecovery4, ModeWTF, ModeDFU, ModeKIS} {
		if !m.Recognized() {
			t.Errorf("%v should be recognized", m)
		}
	}
	if Mode(0x9999).Recognized() {
		t.Fatal("unrelated product id should not be recognized")
	}
}

func TestModeRecoveryMode(t *testing.T) {
	for _, m := range []Mode{ModeRecovery1, ModeRecovery2, ModeRecovery3, ModeRecovery4} {
		if !m.RecoveryMode() {
			t.Errorf("%v should be RecoveryMode", m)
		}
	}
	if ModeDFU.RecoveryMode() {
		t.Fatal("DFU should not be RecoveryMode")
	}
}

func TestModeDFULike(t *testing.T) {
	for _, m := range []Mode{ModeDFU, ModeWTF, ModePortDFU} {
		if !m.DFULike() {
			t.Errorf("%v should be DFULike", m)
		}
	}
	if ModeRecovery1.DFULike() {
		t.Fatal("Recovery1 should not be DFULike")
	}
}

func TestModeString(t *testing.T) {
	if ModeRecovery2.String() != "Recovery2" {
		t.Fatalf("ModeRecovery2.String() = %q", ModeRecovery2.String())
	}
	if Mode(0).String() != "unknown" {
		t.Fatalf("Mode(0).String() = %q", Mode(0).String())
	}
}
