package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"iface-caster/cast"
	"iface-caster/metrics"
)

func newMetricsCommand() *cobra.Command {
	var (
		listen    string
		namespace string
	)

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print the registry metrics, or serve them on /metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := prometheus.NewRegistry()
			if err := reg.Register(metrics.NewCollector(cast.Default(), namespace)); err != nil {
				return fmt.Errorf("failed to register collector: %w", err)
			}

			if listen == "" {
				families, err := reg.Gather()
				if err != nil {
					return fmt.Errorf("failed to gather metrics: %w", err)
				}

				for _, mf := range families {
					if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
						return err
					}
				}

				return nil
			}

			return serveMetrics(cmd.Context(), listen, reg)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "serve /metrics on this address instead of printing once")
	cmd.Flags().StringVar(&namespace, "namespace", metrics.DefaultNamespace, "metric name prefix")

	return cmd
}

func serveMetrics(ctx context.Context, addr string, gatherer prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("metrics server shutdown")
		}
	}()

	log.Info().Str("addr", addr).Msg("serving /metrics")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}

	return nil
}
