//go:build pcap
// +build pcap

// Command tuio2-pcapreplay replays a PCAP capture of TUIO2 wire traffic
// (internal/trace's gopacket bridge) and prints the decoded message
// stream, for offline debugging of a session someone captured on the
// wire rather than recorded to the §6 trace file format. Requires the
// 'pcap' build tag (it links libpcap via github.com/google/gopacket/pcap).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/banshee-data/tuio2d/internal/messages"
	"github.com/banshee-data/tuio2d/internal/trace"
	"github.com/banshee-data/tuio2d/internal/wire"
)

func main() {
	fs := flag.NewFlagSet("tuio2-pcapreplay", flag.ExitOnError)
	udpPort := fs.Int("port", 3333, "UDP port the capture's TUIO2 traffic uses")
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tuio2-pcapreplay [-port N] capture.pcap")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := wire.NewRegistry()
	err := trace.ReplayPCAPFile(ctx, fs.Arg(0), *udpPort, registry, printBundle)
	if err != nil && err != context.Canceled {
		log.Fatalf("tuio2-pcapreplay: %v", err)
	}
}

func printBundle(msgs []messages.Message) {
	for _, m := range msgs {
		fmt.Println(m.String())
	}
}
