package pidlock

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	got := Path("tuio2-serialmt", "dev0")
	assert.Equal(t, filepath.Join(os.TempDir(), "tuio2-serialmt_dev0.pid"), got)
}

func TestAcquireAndUnlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pid")

	lock, err := Acquire(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid())+"\n", string(data))

	require.NoError(t, lock.Unlock())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAcquireRefusesLiveProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pid")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0644))

	_, err := Acquire(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestAcquireReclaimsStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pid")
	// pid 999999 is very unlikely to be alive in any test environment.
	require.NoError(t, os.WriteFile(path, []byte("999999\n"), 0644))

	lock, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, lock.Unlock())
}

func TestAcquireHandlesGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid"), 0644))

	lock, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, lock.Unlock())
}
