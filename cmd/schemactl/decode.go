package main

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"lucid-schemas/internal/common/errors"
	"lucid-schemas/internal/common/logger"
	"lucid-schemas/internal/common/observability"
	"lucid-schemas/pkg/schema"
)

func newDecodeCmd(a *app) *cobra.Command {
	var lines bool
	cmd := &cobra.Command{
		Use:   "decode <record> [file|-]",
		Short: "Decode payloads into a record and print the normalized result",
		Long:  "Decode reads a JSON payload (or one payload per line with --lines) from a file or stdin, constructs the named record and prints the normalized JSON. Fallback substitutions are logged as warnings.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := schema.Lookup(args[0]); !ok {
				return errors.NewUnknownSchemaError(args[0])
			}

			in, closeIn, err := openInput(cmd, args[1:])
			if err != nil {
				return err
			}
			defer closeIn()

			return a.decode(cmd.Context(), cmd.OutOrStdout(), args[0], in, lines)
		},
	}
	cmd.Flags().BoolVar(&lines, "lines", false, "Treat each non-empty input line as a separate payload")
	return cmd
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func (a *app) decode(ctx context.Context, out io.Writer, name string, in io.Reader, lines bool) error {
	runLog := a.log.With(map[string]interface{}{"run_id": uuid.NewString(), "schema": name})

	obs, err := observability.New(a.cfg.App.Name)
	if err != nil {
		runLog.WithError(err).Warn("Observability disabled", nil)
	}
	defer func() { _ = obs.Shutdown(context.Background()) }()

	stop := a.serveMetrics(runLog)
	defer stop()

	d := schema.NewDecoder(
		schema.WithLogger(runLog),
		schema.WithClock(a.clock),
		schema.WithRecorder(obs),
		schema.WithTracerProvider(obs.TracerProvider()),
	)

	payloads, err := readPayloads(in, lines)
	if err != nil {
		return err
	}

	failed := 0
	for i, payload := range payloads {
		rec, err := d.DecodeNamed(ctx, name, payload)
		if err != nil {
			failed++
			runLog.WithError(err).Error("Payload rejected", map[string]interface{}{
				"index":      i,
				"error_code": string(errors.CodeOf(err)),
			})
			continue
		}
		body, err := schema.Encode(rec)
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		if _, err := fmt.Fprintln(out, string(body)); err != nil {
			return err
		}
	}

	runLog.Info("Decode finished", map[string]interface{}{
		"payloads": len(payloads),
		"failed":   failed,
	})
	if failed > 0 {
		return fmt.Errorf("%d of %d payloads rejected", failed, len(payloads))
	}
	return nil
}

func readPayloads(in io.Reader, lines bool) ([][]byte, error) {
	if !lines {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return [][]byte{data}, nil
	}

	var payloads [][]byte
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		payloads = append(payloads, append([]byte(nil), line...))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return payloads, nil
}

// serveMetrics exposes /metrics for the duration of a run when enabled.
func (a *app) serveMetrics(log logger.Logger) func() {
	if !a.cfg.Metrics.Enabled {
		return func() {}
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: a.cfg.Metrics.Address, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Metrics server failed", nil)
		}
	}()
	log.Info("Metrics server started", map[string]interface{}{"address": a.cfg.Metrics.Address})

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
