package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/tuio2d/internal/wrapperrun"
)

func TestRun_Help(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-h"}, &out, &errOut)
	assert.Equal(t, wrapperrun.ExitSuccess, code)
	assert.Contains(t, out.String(), "usage:")
}

func TestRun_List(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-l"}, &out, &errOut)
	assert.Equal(t, wrapperrun.ExitSuccess, code)
}

func TestRun_MissingDevice(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{}, &out, &errOut)
	assert.Equal(t, wrapperrun.ExitConfigError, code)
}

func TestRun_DeviceUnavailable(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-D", "/nonexistent/trace/file", "-p"}, &out, &errOut)
	assert.Equal(t, wrapperrun.ExitDeviceError, code)
}
