package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/viant/namepool"
	"github.com/viant/namepool/model/universe"
	"github.com/viant/namepool/service/codec"
	nphttp "github.com/viant/namepool/service/http"
	"github.com/viant/namepool/service/metrics"
)

const (
	defaultPort     = 8080
	shutdownTimeout = 10 * time.Second
)

func newApp() *cli.App {
	logger := logrus.New()
	return &cli.App{
		Name:    "namepool",
		Usage:   "issue unique human-readable names",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config URL (path, file://, mem://, gs://, s3://)",
				EnvVars: []string{"NAMEPOOL_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "history-file",
				Usage:   "history blob location for the file backend",
				EnvVars: []string{namepool.EnvHistoryFile},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "panic, fatal, error, warn, info, debug or trace",
				EnvVars: []string{"NAMEPOOL_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "emit JSON log lines",
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			logger.SetOutput(c.App.ErrWriter)
			if c.Bool("log-json") {
				logger.SetFormatter(&logrus.JSONFormatter{})
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "serve",
				Usage:     "serve the HTTP API",
				ArgsUsage: "[port]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   defaultPort,
						EnvVars: []string{"PORT"},
					},
					&cli.StringFlag{
						Name:  "trace-file",
						Usage: "write OpenTelemetry spans to this file (stdout when set to -)",
					},
				},
				Action: func(c *cli.Context) error {
					return serve(c, logger)
				},
			},
			{
				Name:  "inspect",
				Usage: "decode the persisted history and print its header and usage",
				Action: func(c *cli.Context) error {
					return inspect(c, logger)
				},
			},
		},
	}
}

// loadConfig layers the config file, then environment, then flags.
func loadConfig(c *cli.Context) (*namepool.Config, error) {
	config := namepool.DefaultConfig()
	if URL := c.String("config"); URL != "" {
		loaded, err := namepool.LoadConfig(c.Context, URL)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	config.ApplyEnv(os.LookupEnv)
	if c.IsSet("history-file") {
		config.HistoryFile = c.String("history-file")
	}
	return config, config.Validate()
}

func port(c *cli.Context) int {
	ret := c.Int("port")
	if c.Args().Present() {
		if value, err := strconv.Atoi(c.Args().First()); err == nil {
			ret = value
		}
	}
	if ret <= 0 {
		ret = defaultPort
	}
	return ret
}

func serve(c *cli.Context, logger *logrus.Logger) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	options := []namepool.Option{
		namepool.WithLogger(logger),
		namepool.WithMetrics(metrics.New(registry)),
	}
	if traceFile := c.String("trace-file"); traceFile != "" {
		if traceFile == "-" {
			traceFile = ""
		}
		options = append(options, namepool.WithTracing("namepool", version, traceFile))
	}
	srv, err := namepool.New(c.Context, config, options...)
	if err != nil {
		return err
	}
	if initErr := srv.InitError(); initErr != nil {
		logger.WithError(initErr).Error("history store init failed, /api/generate will answer 500")
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port(c)),
		Handler:           nphttp.New(srv, nphttp.WithLogger(logger), nphttp.WithGatherer(registry)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
	logger.WithFields(logrus.Fields{"addr": server.Addr, "backend": srv.Backend().Name()}).Info("listening, try GET /api/generate?count=10")
	if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func inspect(c *cli.Context, logger *logrus.Logger) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	store, err := config.NewBackend(c.Context)
	if err != nil {
		return err
	}
	names := universe.Default()
	w := c.App.Writer
	fmt.Fprintf(w, "backend: %s\n", store.Name())
	fmt.Fprintf(w, "universe: size=%d fingerprint=%016x\n", names.Size(), names.Fingerprint())
	blob, err := store.Read(c.Context)
	if err != nil {
		return err
	}
	if blob == nil {
		fmt.Fprintln(w, "history: not initialized")
		return nil
	}
	if header, headerErr := codec.ReadHeader(blob); headerErr == nil {
		fmt.Fprintf(w, "blob: version=%d size=%d fingerprint=%016x raw=%d compressed=%d\n",
			header.Version, header.UniverseSize, header.UniverseFingerprint, header.RawLen, header.CompLen)
	}
	used, err := codec.New(names, codec.WithLevel(config.ZlibLevel)).Decode(blob)
	if err != nil {
		logger.WithError(err).Debug("history decode failed")
		return cli.Exit(err.Error(), 1)
	}
	fmt.Fprintf(w, "history: used=%d remaining=%d\n", used.Population(), used.Remaining())
	return nil
}
