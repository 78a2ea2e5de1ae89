package config

import "errors"

// ErrConfigInvalid is the config_invalid error taxonomy entry (spec §7):
// malformed XML, a missing required key, or an out-of-range value. Fatal
// at wrapper startup.
var ErrConfigInvalid = errors.New("config_invalid")
