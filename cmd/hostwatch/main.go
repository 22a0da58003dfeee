package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hostwatch/hostwatch/internal/config"
	"github.com/hostwatch/hostwatch/internal/monitor"
	"github.com/hostwatch/hostwatch/internal/proclist"
	"github.com/hostwatch/hostwatch/internal/version"
	"github.com/sirupsen/logrus"
)

func main() {
	infoPtr := flag.Bool("info", false, "Print a system snapshot and exit")
	pidPtr := flag.Int("pid", 0, "Print resource metrics for a single PID and exit")
	trackPtr := flag.Int("track", 0, "Track system-wide resource usage for the given number of seconds")
	watchPtr := flag.Bool("watch", false, "Continuously print process listings")
	namePtr := flag.String("name", "", "Only list processes whose name contains this substring")
	userPtr := flag.String("user", "", "Only list processes owned by this user")
	minCPUPtr := flag.Float64("min-cpu", 0, "Only list processes using at least this CPU percentage")
	minMemoryPtr := flag.Uint64("min-memory", 0, "Only list processes using at least this many bytes of memory")
	configPtr := flag.String("config", "hostwatch.yml", "Path to the configuration file")
	versionPtr := flag.Bool("version", false, "Print version and exit")
	help := flag.Bool("help", false, "help flag")
	flag.Parse()

	if *help {
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionPtr {
		fmt.Println(version.UserAgent())
		os.Exit(0)
	}

	settings, err := config.Load(*configPtr)
	if err != nil {
		logrus.Fatalf("Failed to load configuration from %s: %v", *configPtr, err)
	}

	logger := logrus.New()

	if level, err := logrus.ParseLevel(settings.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if settings.LogFile != "" {
		logFile, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0660)
		if err != nil {
			logger.Warnf("Failed to open log file: %v", err)
		} else {
			defer logFile.Close()
			logger.SetOutput(io.MultiWriter(logFile, os.Stderr))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signalChannel
		logger.Infof("Captured %v...", sig)
		cancel()
	}()

	resourceMonitor := monitor.New(&monitor.Config{
		WatchInterval:  settings.WatchInterval(),
		SampleInterval: settings.SampleInterval(),
	}, logger)

	filters := &proclist.Filters{
		Name:      *namePtr,
		User:      *userPtr,
		MinCPU:    *minCPUPtr,
		MinMemory: *minMemoryPtr,
	}

	switch {
	case *infoPtr:
		info, err := resourceMonitor.GetSystemInfo(ctx)
		if err != nil {
			logger.Fatalf("Failed to capture a system snapshot: %v", err)
		}
		logger.Infof("Memory: %s used out of %s (%.1f%%)", humanize.Bytes(info.Memory.Used),
			humanize.Bytes(info.Memory.Total), info.Memory.Percent)
		printJSON(info)
	case *pidPtr != 0:
		metrics, err := resourceMonitor.GetProcessMetrics(ctx, *pidPtr)
		if err != nil {
			logger.Fatalf("Failed to retrieve metrics for PID %d: %v", *pidPtr, err)
		}
		printJSON(metrics)
	case *trackPtr != 0:
		report, err := resourceMonitor.TrackResourceUsage(ctx, time.Duration(*trackPtr)*time.Second)
		if err != nil {
			logger.Fatalf("Failed to track resource usage: %v", err)
		}
		logger.Infof("Collected %d sample(s): average memory %s, peak memory %s",
			len(report.Samples), humanize.Bytes(uint64(report.AverageMemory)),
			humanize.Bytes(report.PeakMemory))
		printJSON(report)
	case *watchPtr:
		for processes := range resourceMonitor.StartWatchMode(ctx, filters) {
			printJSON(processes)
		}
	default:
		flag.PrintDefaults()
		os.Exit(1)
	}
}

func printJSON(value interface{}) {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		logrus.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Println(string(encoded))
}
