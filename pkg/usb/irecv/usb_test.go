package irecv

import (
	"errors"
	"testing"
)

func TestIsResetDisconnect(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("libusb: no device [code -4]"), true},
		{errors.New("libusb: not responding [code -7]"), true},
		{errors.New("No such device (it may have been disconnected)"), true},
		{errors.New("libusb: busy [code -6]"), false},
		{errors.New("libusb: invalid param [code -2]"), false},
	}
	for _, c := range cases {
		if got := isResetDisconnect(c.err); got != c.want {
			t.Errorf("isResetDisconnect(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
