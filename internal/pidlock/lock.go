package pidlock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// Lock holds a claimed PID file; Unlock removes it.
type Lock struct {
	path string
}

// Path returns the §6 PID-file path for a wrapper name and device id.
func Path(wrapper, deviceID string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s_%s.pid", wrapper, deviceID))
}

// Acquire checks path for a live process and, if none is found, claims it
// by writing the current process id. Returns ErrAlreadyRunning if a live
// process already holds the lock.
func Acquire(path string) (*Lock, error) {
	if pid, ok := readLivePID(path); ok {
		return nil, fmt.Errorf("%w: pid %d holds %s", ErrAlreadyRunning, pid, path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("pidlock: open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d\n", os.Getpid()); err != nil {
		return nil, fmt.Errorf("pidlock: write %s: %w", path, err)
	}
	return &Lock{path: path}, nil
}

// Unlock removes the PID file.
func (l *Lock) Unlock() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("pidlock: remove %s: %w", l.path, err)
	}
	return nil
}

// readLivePID returns the pid in an existing file at path and whether that
// process is still alive (checked via signal 0). A missing or unparsable
// file, or a dead pid, reports ok=false so the caller proceeds to claim it.
func readLivePID(path string) (pid int, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n <= 0 {
		return 0, false
	}
	if err := syscall.Kill(n, 0); err != nil {
		return 0, false
	}
	return n, true
}
