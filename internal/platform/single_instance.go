package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net"
	"strconv"
	"time"
)

var (
	// ErrAlreadyRunning indicates another instance already holds the lock.
	ErrAlreadyRunning = errors.New("instance already running")
	// ErrPortInUse indicates the lock port is held by something that did not
	// answer the instance handshake.
	ErrPortInUse = errors.New("instance lock port held by another program")
)

const (
	minGuardPort     = 20000
	maxGuardPort     = 39999
	handshakeTimeout = 500 * time.Millisecond
)

// InstanceGuard holds the single-instance lock as a bound localhost port.
// While held it answers every connection with the instance handshake so a
// second launch can tell a running copy from an unrelated listener.
type InstanceGuard struct {
	listener  net.Listener
	address   string
	handshake string
	done      chan struct{}
}

// AcquireSingleInstance binds a port derived from appName.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	return acquireOnPort(appName, portFromName(appName))
}

func acquireOnPort(appName string, port int) (*InstanceGuard, error) {
	address := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, identifyHolder(appName, address, err)
	}

	guard := &InstanceGuard{
		listener:  listener,
		address:   address,
		handshake: handshakeLine(appName),
		done:      make(chan struct{}),
	}
	go guard.serve(listener)
	return guard, nil
}

// Release frees the lock. Safe on a nil guard and when called twice.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	<-guard.done
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) serve(listener net.Listener) {
	defer close(guard.done)
	for {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		_ = conn.SetWriteDeadline(time.Now().Add(handshakeTimeout))
		_, _ = io.WriteString(conn, guard.handshake)
		_ = conn.Close()
	}
}

// identifyHolder asks whoever owns address for the handshake.
func identifyHolder(appName, address string, listenErr error) error {
	conn, err := net.DialTimeout("tcp", address, handshakeTimeout)
	if err != nil {
		return fmt.Errorf("acquire instance lock on %s: %w", address, listenErr)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err == nil && line == handshakeLine(appName) {
		return fmt.Errorf("%w on %s", ErrAlreadyRunning, address)
	}
	return fmt.Errorf("%w: %s", ErrPortInUse, address)
}

func handshakeLine(appName string) string {
	return appName + " instance\n"
}

func portFromName(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxGuardPort - minGuardPort + 1
	return minGuardPort + int(hash.Sum32()%uint32(rangeSize))
}
