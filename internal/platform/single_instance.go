package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"path/filepath"
)

// ErrAlreadyRunning indicates another display already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	lockHost    = "127.0.0.1"
	minLockPort = 20000
	maxLockPort = 39999
)

// InstanceGuard holds the single-instance lock for one config file.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// InstanceKey builds the lock key for one app and config file, so separate
// config files can be displayed side by side.
func InstanceKey(appName, configPath string) string {
	if absolute, err := filepath.Abs(configPath); err == nil {
		configPath = absolute
	}
	return appName + "|" + configPath
}

// AcquireSingleInstance binds the localhost port derived from key. A port in
// use is reported as ErrAlreadyRunning; any other failure is returned as is.
func AcquireSingleInstance(key string) (*InstanceGuard, error) {
	address := lockAddress(key)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		if isAddrInUse(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrAlreadyRunning, address, err)
		}
		return nil, fmt.Errorf("lock %s: %w", address, err)
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Release frees the lock. It is safe on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound lock address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func lockAddress(key string) string {
	return net.JoinHostPort(lockHost, fmt.Sprint(portFromKey(key)))
}

func portFromKey(key string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	span := uint32(maxLockPort - minLockPort + 1)
	return minLockPort + int(hash.Sum32()%span)
}
