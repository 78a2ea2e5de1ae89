// Command tuio2-wrapper is the generic wrapper driver (spec §6): it reads
// a trace file (spec §6 trace file format) as its raw event source and
// drives it through the tracker, adaptor chain, and server exactly like a
// live device would, which makes it useful both for replaying recorded
// sessions and as the reference CLI surface every concrete device driver
// (cmd/tuio2-serialmt, ...) follows.
package main

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/banshee-data/tuio2d/internal/config"
	"github.com/banshee-data/tuio2d/internal/debugstream"
	"github.com/banshee-data/tuio2d/internal/pidlock"
	"github.com/banshee-data/tuio2d/internal/server"
	"github.com/banshee-data/tuio2d/internal/topology"
	"github.com/banshee-data/tuio2d/internal/tracker"
	"github.com/banshee-data/tuio2d/internal/trace"
	"github.com/banshee-data/tuio2d/internal/wrapperrun"
)

const progName = "tuio2-wrapper"

func main() {
	os.Exit(int(run(os.Args[1:], os.Stdout, os.Stderr)))
}

func run(args []string, stdout, stderr io.Writer) wrapperrun.ExitCode {
	logger := log.New(stderr, progName+": ", log.LstdFlags)

	flags, err := wrapperrun.ParseFlags(progName, args, stderr)
	if err != nil {
		return wrapperrun.ExitConfigError
	}
	if flags.Help {
		wrapperrun.PrintUsage(progName, stdout)
		return wrapperrun.ExitSuccess
	}
	if flags.List {
		fmt.Fprintln(stdout, "tuio2-wrapper has no live devices of its own; pass a trace file as -D")
		return wrapperrun.ExitSuccess
	}
	if flags.Device == "" {
		fmt.Fprintln(stderr, "missing required flag: -D device (trace file path)")
		return wrapperrun.ExitConfigError
	}

	var wc *config.WrapperConfig
	if flags.ConfigPath != "" {
		muse, err := config.Load(flags.ConfigPath)
		if err != nil {
			logger.Printf("config: %v", err)
			return wrapperrun.ExitConfigError
		}
		for i, w := range muse.Wrappers {
			if w.Name == progName {
				wc = &muse.Wrappers[i].Config
				break
			}
		}
	}

	var lock *pidlock.Lock
	if !flags.NoPID {
		lockPath := pidlock.Path(progName, wrapperrun.DeviceID(flags.Device))
		lock, err = pidlock.Acquire(lockPath)
		if err != nil {
			logger.Printf("%v", err)
			return wrapperrun.ExitDeviceError
		}
		defer lock.Unlock()
	}

	f, err := os.Open(flags.Device)
	if err != nil {
		logger.Printf("device_unavailable: %v", err)
		return wrapperrun.ExitDeviceError
	}
	defer f.Close()

	reader, err := trace.NewReader(f)
	if err != nil {
		logger.Printf("device_unavailable: %v", err)
		return wrapperrun.ExitDeviceError
	}
	if _, err := reader.ReadAxisRanges(); err != nil {
		logger.Printf("device_unavailable: reading axis ranges: %v", err)
		return wrapperrun.ExitDeviceError
	}
	source := trace.NewReplaySource(reader, nil, time.Duration(flags.ReplayDelay*float64(time.Second)))

	srv, err := server.NewServer(server.Config{
		Address:    flags.Target,
		InstanceID: instanceHash(progName),
		AppName:    progName,
	})
	if err != nil {
		logger.Printf("%v", err)
		return wrapperrun.ExitRuntimeError
	}
	defer srv.Close()

	tr := tracker.NewTracker(srv.Allocator(), 50.0)
	chain := wrapperrun.BuildChain(wc, flags.DisableTransform)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var topoSummary debugstream.TopologySummary
	if wc != nil {
		topo, err := topology.FromWrapperConfig(wc, 5*time.Second)
		if err != nil {
			logger.Printf("config_invalid: %v", err)
			return wrapperrun.ExitConfigError
		}
		topoSummary = debugstream.SummarizeTopology(topo)

		pub := topology.NewPublisher(topo)
		go func() {
			if err := pub.Run(ctx, srv); err != nil {
				logger.Printf("topology publisher: %v", err)
			}
		}()
	}

	dbg := debugstream.NewServer("127.0.0.1:7100", srv, topoSummary)
	go func() {
		if err := dbg.ListenAndServe(ctx); err != nil {
			logger.Printf("debugstream: %v", err)
		}
	}()

	loop := wrapperrun.NewLoop(source, tr, chain, srv, logger)
	if err := loop.Run(ctx); err != nil {
		logger.Printf("%v", err)
		return wrapperrun.ExitRuntimeError
	}

	return wrapperrun.ExitSuccess
}

func instanceHash(appName string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(appName))
	return h.Sum32()
}
