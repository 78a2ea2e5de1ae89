// Command tuio2-serialmt is the serial-attached multitouch controller
// wrapper driver (spec §6): it owns a live serial port, translates the
// controller's line protocol into raw Type-B events (internal/device/
// serialmt), and drives them through the tracker, adaptor chain, and
// server. It is the fullest wrapper wiring in this repository: PID-file
// locking, XML configuration, topology publication, the JSON debug
// sidecar, and the optional sqlite session log all run together here.
package main

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.bug.st/serial"

	"github.com/banshee-data/tuio2d/internal/config"
	"github.com/banshee-data/tuio2d/internal/debugstream"
	"github.com/banshee-data/tuio2d/internal/device/serialmt"
	"github.com/banshee-data/tuio2d/internal/device/serialmux"
	"github.com/banshee-data/tuio2d/internal/pidlock"
	"github.com/banshee-data/tuio2d/internal/server"
	"github.com/banshee-data/tuio2d/internal/sessionlog"
	"github.com/banshee-data/tuio2d/internal/topology"
	"github.com/banshee-data/tuio2d/internal/tracker"
	"github.com/banshee-data/tuio2d/internal/wrapperrun"
)

const progName = "tuio2-serialmt"

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
		ports, err := serial.GetPortsList()
		if err != nil {
			logger.Printf("device_unavailable: %v", err)
			return wrapperrun.ExitDeviceError
		}
		for _, p := range ports {
			fmt.Fprintln(stdout, p)
		}
		return wrapperrun.ExitSuccess
	}
	if flags.Device == "" {
		fmt.Fprintln(stderr, "missing required flag: -D device (serial port path)")
		return wrapperrun.ExitConfigError
	}

	var wc *config.WrapperConfig
	if flags.ConfigPath != "" {
		muse, err := config.Load(flags.ConfigPath)
		if err != nil {
			logger.Printf("config_invalid: %v", err)
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

	mux, err := serialmux.NewRealSerialMux(flags.Device, wrapperrun.PortOptionsFromConfig(wc))
	if err != nil {
		logger.Printf("device_unavailable: %v", err)
		return wrapperrun.ExitDeviceError
	}
	defer mux.Close()

	driver := serialmt.NewDriver(mux)
	defer driver.Close()

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

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := mux.Monitor(ctx); err != nil && err != context.Canceled {
			logger.Printf("serial monitor: %v", err)
		}
	}()

	// Driver.Next blocks on the subscription channel; it only notices
	// cancellation once something closes that channel.
	go func() {
		<-ctx.Done()
		driver.Close()
	}()

	var topoSummary debugstream.TopologySummary
	if wc != nil {
		topo, err := topology.FromWrapperConfig(wc, 5*time.Second)
		if err != nil {
			logger.Printf("config_invalid: %v", err)
			return wrapperrun.ExitConfigError
		}
		topoSummary = debugstream.SummarizeTopology(topo)

		pub := topology.NewPublisher(topo)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := pub.Run(ctx, srv); err != nil {
				logger.Printf("topology publisher: %v", err)
			}
		}()
	}

	dbg := debugstream.NewServer("127.0.0.1:7101", srv, topoSummary)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := dbg.ListenAndServe(ctx); err != nil {
			logger.Printf("debugstream: %v", err)
		}
	}()

	slog, err := sessionlog.NewDB(pidlock.Path(progName, wrapperrun.DeviceID(flags.Device)) + ".sessionlog.db")
	if err != nil {
		logger.Printf("sessionlog: %v (continuing without it)", err)
	} else {
		defer slog.Close()
		wg.Add(1)
		go func() {
			defer wg.Done()
			wrapperrun.PollSessionLog(ctx, slog, srv, flags.Device, time.Second)
		}()
	}

	loop := wrapperrun.NewLoop(driver, tr, chain, srv, logger)
	runErr := loop.Run(ctx)

	stop()
	wg.Wait()

	if runErr != nil {
		logger.Printf("%v", runErr)
		return wrapperrun.ExitRuntimeError
	}
	return wrapperrun.ExitSuccess
}

func instanceHash(appName string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(appName))
	return h.Sum32()
}
