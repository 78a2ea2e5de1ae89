package pidlock

import "errors"

// ErrAlreadyRunning indicates a live process already holds the lock.
var ErrAlreadyRunning = errors.New("already_running")
