//go:build windows

package platform

import (
	"errors"
	"syscall"
)

// Winsock reports a bound port as WSAEADDRINUSE rather than EADDRINUSE.
const wsaeaddrinuse syscall.Errno = 10048

func isAddrInUse(err error) bool {
	return errors.Is(err, wsaeaddrinuse) || errors.Is(err, syscall.EADDRINUSE)
}
