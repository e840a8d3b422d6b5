// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/MKhiriev/secure-api/internal/adapter"
	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/models"
	"github.com/spf13/cobra"
)

var errNoSuccessfulRequests = errors.New("no request succeeded")

type options struct {
	baseURL     string
	username    string
	password    string
	requests    int
	concurrency int
	timeout     time.Duration
	logLevel    string
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:               "loadtest",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "Drive concurrent traffic at a secure-api instance",
		Long: "Log in with the demo credentials, verify the bearer token against /api/users/me, " +
			"then send the requested number of calls to /api/performance-test.",
		Version:      fmt.Sprintf("%s (built %s, commit %s)", info.BuildVersion(), info.BuildDate(), info.BuildCommit()),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.baseURL, "url", "u", "http://localhost:8000", "Base URL of the service")
	cmd.Flags().StringVar(&opts.username, "username", "loadtest", "Username to log in with")
	cmd.Flags().StringVar(&opts.password, "password", "password123", "Password to log in with")
	cmd.Flags().IntVarP(&opts.requests, "requests", "n", 100, "Total number of performance-test calls")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 10, "Maximum calls in flight")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Per-request timeout")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	log := logger.NewLogger("loadtest", opts.logLevel)
	ctx := log.WithContext(cmd.Context())
	out := cmd.OutOrStdout()

	client, err := adapter.NewHTTPAPIClient(opts.baseURL, opts.timeout, log)
	if err != nil {
		return err
	}

	health, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	fmt.Fprintf(out, "service %s is %s (redis: %s)\n", health.Version, health.Status, health.RedisStatus)

	token, err := client.Login(ctx, models.LoginRequest{Username: opts.username, Password: &opts.password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	fmt.Fprintf(out, "logged in as %s, token valid for %ds\n", opts.username, token.ExpiresIn)

	me, err := client.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("current user: %w", err)
	}
	log.Info().Str("username", me.Username).Msg(me.Message)

	result, err := adapter.RunLoadTest(ctx, client, adapter.LoadTestParams{
		Requests:    opts.requests,
		Concurrency: opts.concurrency,
	})
	if err != nil {
		return err
	}

	printResult(out, result)

	if result.Succeeded == 0 {
		return errNoSuccessfulRequests
	}
	return nil
}

func printResult(out io.Writer, r adapter.LoadTestResult) {
	fmt.Fprintf(out, "requests: %d  ok: %d  failed: %d  elapsed: %s\n", r.Total, r.Succeeded, r.Failed, r.Elapsed.Round(time.Millisecond))
	if r.Succeeded > 0 {
		fmt.Fprintf(out, "latency min/avg/max: %s / %s / %s\n",
			r.MinLatency.Round(time.Millisecond), r.AvgLatency.Round(time.Millisecond), r.MaxLatency.Round(time.Millisecond))
		if secs := r.Elapsed.Seconds(); secs > 0 {
			fmt.Fprintf(out, "throughput: %.1f req/s\n", float64(r.Succeeded)/secs)
		}
	}

	for _, msg := range slices.Sorted(maps.Keys(r.Errors)) {
		fmt.Fprintf(out, "  %dx %s\n", r.Errors[msg], msg)
	}
}
