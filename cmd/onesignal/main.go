// Command onesignal sends a single push notification from the command line.
//
//	onesignal -message "Deploy finished" -segment "Engineers"
//
// Credentials are read from -config (YAML) or from the ONESIGNAL_* environment
// variables and an optional .env file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	onesignal "github.com/peteraglen/onesignal-go-client"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	baseURL    string
	logLevel   string
	message    string
	segment    string
	player     string
	email      string
	url        string
	sound      string
	async      bool
	insecure   bool
	timeout    time.Duration
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{}

	fs := flag.NewFlagSet("onesignal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML config file (defaults to ONESIGNAL_* environment variables)")
	fs.StringVar(&f.baseURL, "base-url", onesignal.APIURL, "API base URL")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&f.message, "message", "", "notification text (required)")
	fs.StringVar(&f.segment, "segment", "", "send to this segment")
	fs.StringVar(&f.player, "player", "", "send to this player id")
	fs.StringVar(&f.email, "email", "", "send to the player with this email")
	fs.StringVar(&f.url, "url", "", "URL opened when the notification is clicked")
	fs.StringVar(&f.sound, "sound", "", "sound name without extension")
	fs.BoolVar(&f.async, "async", false, "send in the background and wait for the future")
	fs.BoolVar(&f.insecure, "insecure", false, "skip TLS certificate verification")
	fs.DurationVar(&f.timeout, "timeout", 30*time.Second, "request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if strings.TrimSpace(f.message) == "" {
		return nil, errors.New("-message is required")
	}

	targets := 0
	for _, v := range []string{f.segment, f.player, f.email} {
		if v != "" {
			targets++
		}
	}
	if targets > 1 {
		return nil, errors.New("only one of -segment, -player and -email may be set")
	}

	return f, nil
}

func newLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func loadConfig(path string) (onesignal.Config, error) {
	if path != "" {
		return onesignal.LoadConfigFile(path)
	}
	return onesignal.LoadConfigFromEnv()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(f.logLevel, stderr)

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}

	client, err := onesignal.New(cfg,
		onesignal.WithBaseURL(f.baseURL),
		onesignal.WithTimeout(f.timeout),
		onesignal.WithInsecureSkipVerify(f.insecure),
		onesignal.WithRequestLogger(onesignal.NewSlogLogger(logger)),
	)
	if err != nil {
		return err
	}
	defer client.Close()

	var opts []onesignal.NotificationOption
	if f.url != "" {
		opts = append(opts, onesignal.WithURL(f.url))
	}
	if f.sound != "" {
		opts = append(opts, onesignal.WithSound(f.sound))
	}

	logger.Info("sending notification", "app_id", client.AppID(), "async", f.async)

	var result onesignal.Result
	if f.async {
		result, err = sendAsync(ctx, client.Async(), f, opts, logger)
	} else {
		result, err = send(ctx, client, f, opts)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func send(ctx context.Context, c *onesignal.Client, f *flags, opts []onesignal.NotificationOption) (onesignal.Result, error) {
	switch {
	case f.player != "":
		return c.SendNotificationToUser(ctx, f.message, f.player, opts...)
	case f.email != "":
		return c.SendNotificationToUserByEmail(ctx, f.message, f.email, nil, nil, opts...)
	case f.segment != "":
		return c.SendNotificationToSegment(ctx, f.message, f.segment, opts...)
	default:
		return c.SendNotificationToAll(ctx, f.message, opts...)
	}
}

func sendAsync(ctx context.Context, c *onesignal.AsyncClient, f *flags, opts []onesignal.NotificationOption, logger *slog.Logger) (onesignal.Result, error) {
	c = c.WithCallback(func(resp *resty.Response) {
		logger.Debug("notification accepted", "status", resp.StatusCode(), "duration", resp.Time())
	})

	var future *onesignal.Future[*resty.Response]
	switch {
	case f.player != "":
		future = c.SendNotificationToUser(ctx, f.message, f.player, opts...)
	case f.email != "":
		future = c.SendNotificationToUserByEmail(ctx, f.message, f.email, nil, nil, opts...)
	case f.segment != "":
		future = c.SendNotificationToSegment(ctx, f.message, f.segment, opts...)
	default:
		future = c.SendNotificationToAll(ctx, f.message, opts...)
	}

	resp, err := future.Await()
	if err != nil {
		return nil, err
	}
	return onesignal.ParseResult(resp.Body())
}
