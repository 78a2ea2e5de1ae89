package wrapperrun

import (
	"fmt"
	"io"
)

// PrintUsage writes the §6 CLI surface help text common to every wrapper
// driver.
func PrintUsage(progName string, out io.Writer) {
	fmt.Fprintf(out, "usage: %s [options] [muse_config.xml]\n\n", progName)
	fmt.Fprintln(out, "options:")
	fmt.Fprintln(out, "  -h, --help          show this help and exit")
	fmt.Fprintln(out, "  -v, --verbose       enable verbose logging")
	fmt.Fprintln(out, "  -l, --list          list available devices and exit")
	fmt.Fprintln(out, "  -c, --calibration   run in calibration mode")
	fmt.Fprintln(out, "  -t target           wire protocol target host:port (default 127.0.0.1:3333)")
	fmt.Fprintln(out, "  -D device           device path or serial port")
	fmt.Fprintln(out, "  -o output-trace     write every raw event to a trace file")
	fmt.Fprintln(out, "  -T                  disable coordinate transforms")
	fmt.Fprintln(out, "  -d seconds          replay delay between trace records")
	fmt.Fprintln(out, "  -p, --no-pid        disable the single-instance PID-file lock")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "exit codes: 0 success, 1 config error, 2 device error, 3 runtime failure")
}
