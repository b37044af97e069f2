package irecv

// Mode is the USB product id observed for a device, which doubles as the
// boot-mode identifier throughout this package.
type Mode uint32

const (
	AppleVendorID = 0x05AC

	ModeRecovery1 Mode = 0x1280
	ModeRecovery2 Mode = 0x1281
	ModeRecovery3 Mode = 0x1282
	ModeRecovery4 Mode = 0x1283
	ModeWTF       Mode = 0x1222
	ModeDFU       Mode = 0x1227
	// ModePortDFU and ModeKIS share the same USB product id; on Windows
	// they are told apart by driver GUID, elsewhere by the enable
	// sequence (§3).
	ModePortDFU Mode = 0x1881
	ModeKIS     Mode = 0x1881
)

// Recognized reports whether m is one of the five boot modes this package
// understands.
func (m Mode) Recognized() bool {
	switch m {
	case ModeRecovery1, ModeRecovery2, ModeRecovery3, ModeRecovery4, ModeWTF, ModeDFU, ModeKIS:
		return true
	default:
		return false
	}
}

// RecoveryMode reports whether m is one of the four Recovery-mode product ids.
func (m Mode) RecoveryMode() bool {
	switch m {
	case ModeRecovery1, ModeRecovery2, ModeRecovery3, ModeRecovery4:
		return true
	default:
		return false
	}
}

// DFULike reports whether m behaves like DFU for interface-claiming and
// upload-flow purposes (DFU, WTF, Port-DFU).
func (m Mode) DFULike() bool {
	switch m {
	case ModeDFU, ModeWTF, ModePortDFU:
		return true
	default:
		return false
	}
}

func (m Mode) String() string {
	switch m {
	case ModeRecovery1:
		return "Recovery1"
	case ModeRecovery2:
		return "Recovery2"
	case ModeRecovery3:
		return "Recovery3"
	case ModeRecovery4:
		return "Recovery4"
	case ModeWTF:
		return "WTF"
	case ModeDFU:
		return "DFU"
	case ModeKIS:
		return "KIS/Port-DFU"
	default:
		return "unknown"
	}
}
