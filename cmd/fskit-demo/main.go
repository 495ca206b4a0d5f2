// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// fskit-demo mounts a small in-memory filesystem over FUSE. It exists to
// exercise fskit end to end — tree, routing, the FUSE adapter, optional
// declarative routes, and Prometheus metrics — from a single runnable
// binary rather than a test.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/gofskit/fskit"
	"github.com/gofskit/fskit/fuseadapter"
	"github.com/gofskit/fskit/route"
	"github.com/gofskit/fskit/routeconfig"
	"github.com/gofskit/fskit/routemetrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fskit-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var mountpoint string
	var routesPath string
	var metricsAddr string
	var allowOther bool

	flagSet := pflag.NewFlagSet("fskit-demo", pflag.ContinueOnError)
	flagSet.StringVar(&mountpoint, "mountpoint", "", "directory to mount the demo filesystem at (required)")
	flagSet.StringVar(&routesPath, "routes", "", "optional YAML file of declarative routes to load (see routeconfig)")
	flagSet.StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
	flagSet.BoolVar(&allowOther, "allow-other", false, "allow other users to access the mount")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			flagSet.PrintDefaults()
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		flagSet.PrintDefaults()
		return nil
	}
	if mountpoint == "" {
		return fmt.Errorf("--mountpoint is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var metrics *routemetrics.Collector
	if metricsAddr != "" {
		metrics = routemetrics.NewCollector()
		if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
			return fmt.Errorf("registering metrics: %w", err)
		}
		go serveMetrics(logger, metricsAddr)
	}

	core := fskit.New(fskit.WithLogger(logger), fskit.WithMetrics(metrics))
	seedDemoTree(core, logger)
	registerDemoRoutes(core, logger)

	if routesPath != "" {
		cfg, err := routeconfig.Load(routesPath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", routesPath, err)
		}
		if _, err := routeconfig.Apply(core.Engine(), cfg); err != nil {
			return fmt.Errorf("applying %s: %w", routesPath, err)
		}
		logger.Info("loaded declarative routes", "path", routesPath, "count", len(cfg.Rules))
	}

	server, err := fuseadapter.Mount(fuseadapter.Options{
		Mountpoint: mountpoint,
		Core:       core,
		AllowOther: allowOther,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signals
		logger.Info("received signal, unmounting", "signal", sig)
		if err := server.Unmount(); err != nil {
			logger.Error("unmount failed", "error", err)
		}
	}()

	server.Wait()
	return nil
}

func serveMetrics(logger *slog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server exited", "error", err)
	}
}

// registerDemoRoutes wires a handful of illustrative routes directly in
// Go, alongside whatever --routes loads declaratively. /readonly rejects
// writes; /logged logs every open.
func registerDemoRoutes(core *fskit.Core, logger *slog.Logger) {
	engine := core.Engine()

	if _, err := engine.RouteWrite(`/readonly/.*`, func(c *fskit.Core, meta *route.Metadata, entry route.Entry, buf []byte, off int64, handleData any) (int, int) {
		return 0, -int(syscall.EROFS)
	}, route.Concurrent); err != nil {
		logger.Warn("registering /readonly write guard failed", "error", err)
	}

	if _, err := engine.RouteOpen(`/logged/.*`, func(c *fskit.Core, meta *route.Metadata, entry route.Entry, flags int) (int, any) {
		logger.Info("open", "path", meta.Path())
		return 0, nil
	}, route.Concurrent); err != nil {
		logger.Warn("registering /logged open logger failed", "error", err)
	}
}

// seedDemoTree populates the mount with a few directories and files so
// there is something to look at immediately after mounting.
func seedDemoTree(core *fskit.Core, logger *slog.Logger) {
	for _, dir := range []string{"/readonly", "/logged"} {
		if err := core.Mkdir(dir, 0o755, 0, 0); err != nil {
			logger.Warn("seeding directory failed", "path", dir, "error", err)
		}
	}

	h, err := core.Create("/readonly/notice.txt", 0o644, 0, 0)
	if err != nil {
		logger.Warn("seeding file failed", "path", "/readonly/notice.txt", "error", err)
		return
	}
	if _, err := core.Write(h, []byte("this tree is read-only\n"), 0); err != nil {
		logger.Warn("seeding file content failed", "error", err)
	}
	if err := core.Close(h); err != nil {
		logger.Warn("closing seed file failed", "error", err)
	}

	if digest, stored, err := core.ContentDigest("/readonly/notice.txt"); err == nil {
		logger.Info("seeded file", "path", "/readonly/notice.txt", "digest", digest, "stored_bytes", stored)
	}
}
