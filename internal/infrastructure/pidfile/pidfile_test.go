package pidfile

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireAndRelease(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "api.pid")
	pf := New(path)

	// Act
	require.NoError(t, pf.Acquire())
	pid, err := pf.ReadPID()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
	require.NoError(t, pf.Release())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAcquire_RejectsLiveOwner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.pid")
	require.NoError(t, New(path).Acquire())

	err := New(path).Acquire()

	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestAcquire_ReplacesStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.pid")
	// PIDs this large are never assigned
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(1<<30)+"\n"), 0o644))

	require.NoError(t, New(path).Acquire())

	pid, err := New(path).ReadPID()
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
}

func TestAcquire_ReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid"), 0o644))

	assert.NoError(t, New(path).Acquire())
}

func TestRelease_LeavesForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.pid")
	require.NoError(t, os.WriteFile(path, []byte("1\n"), 0o644))

	require.NoError(t, New(path).Release())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
