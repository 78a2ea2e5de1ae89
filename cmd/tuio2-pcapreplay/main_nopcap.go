//go:build !pcap
// +build !pcap

// Command tuio2-pcapreplay (see main_pcap.go) requires the 'pcap' build
// tag; this stub keeps `go build ./...` working without libpcap installed.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "tuio2-pcapreplay: built without the 'pcap' tag; rebuild with -tags pcap")
	os.Exit(1)
}
