// Package platform holds OS-facing helpers.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
)

// ErrAlreadyRunning indicates another timer process already holds the lock.
var ErrAlreadyRunning = errors.New("timer already running")

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// InstanceGuard keeps a single timer per user session by holding a
// localhost port derived from the app name.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// AcquireSingleInstance binds the lock port for appName. It returns
// ErrAlreadyRunning when the port is taken.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := LockAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAlreadyRunning, address, err)
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// LockAddress returns the loopback address used as the lock for appName.
// Names differing only in case or surrounding space share a lock.
func LockAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", lockPort(appName))
}

// Release frees the lock. It is safe on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func lockPort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(strings.ToLower(strings.TrimSpace(appName))))
	rangeSize := maxLockPort - minLockPort + 1
	return minLockPort + int(hash.Sum32()%uint32(rangeSize))
}
