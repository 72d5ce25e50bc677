package platform

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	port := portFromName("PomodoroSS")

	assert.Equal(t, port, portFromName("PomodoroSS"))
	assert.GreaterOrEqual(t, port, minGuardPort)
	assert.LessOrEqual(t, port, maxGuardPort)
}

func TestSecondGuardIsRejected(t *testing.T) {
	port := freePort(t)
	first, err := acquireOnPort("pomodoross-test", port)
	require.NoError(t, err)
	defer first.Release()

	_, err = acquireOnPort("pomodoross-test", port)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Release())
	assert.NoError(t, first.Release(), "second release is a no-op")

	again, err := acquireOnPort("pomodoross-test", port)
	require.NoError(t, err)
	assert.Equal(t, first.Address(), again.Address())
	require.NoError(t, again.Release())
}

func TestGuardOfOtherAppIsNotThisInstance(t *testing.T) {
	port := freePort(t)
	other, err := acquireOnPort("other-app", port)
	require.NoError(t, err)
	defer other.Release()

	_, err = acquireOnPort("pomodoross-test", port)
	require.ErrorIs(t, err, ErrPortInUse)
	assert.NotErrorIs(t, err, ErrAlreadyRunning)
}

func TestForeignListenerIsReported(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			_, _ = io.WriteString(conn, "HTTP/1.1 400 Bad Request\r\n\r\n")
			_ = conn.Close()
		}
	}()

	_, err = acquireOnPort("pomodoross-test", listener.Addr().(*net.TCPAddr).Port)
	require.ErrorIs(t, err, ErrPortInUse)
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard

	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}
