// Command tuio2-monitor is a go-echarts dashboard that polls a running
// wrapper's internal/debugstream sidecar and renders a live contact-count
// chart, grounded on the teacher's echarts traffic chart
// (internal/lidar/monitor/echarts_handlers.go).
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func main() {
	source := flag.String("source", "http://127.0.0.1:7100", "debugstream sidecar base URL to poll")
	listen := flag.String("listen", ":8090", "dashboard listen address")
	interval := flag.Duration("interval", time.Second, "poll interval")
	history := flag.Int("history", 120, "number of samples kept for the chart")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poller := NewPoller(*source, *history)
	go poller.Run(ctx, *interval)

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleDashboard(poller))

	srv := &http.Server{Addr: *listen, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("tuio2-monitor: serving dashboard on %s, polling %s every %s", *listen, *source, *interval)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("tuio2-monitor: %v", err)
	}
}

func handleDashboard(poller *Poller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		samples := poller.Snapshot()

		x := make([]string, len(samples))
		y := make([]opts.LineData, len(samples))
		for i, s := range samples {
			x[i] = s.label()
			y[i] = opts.LineData{Value: s.aliveCount}
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "600px"}),
			charts.WithTitleOpts(opts.Title{Title: "Live contact count", Subtitle: time.Now().Format(time.RFC3339)}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		)
		line.SetXAxis(x).
			AddSeries("alive", y, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

		page := components.NewPage()
		page.AddCharts(line)

		var buf bytes.Buffer
		if err := page.Render(&buf); err != nil {
			http.Error(w, fmt.Sprintf("render error: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}
