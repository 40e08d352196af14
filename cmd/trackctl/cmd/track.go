package cmd

import (
	"context"
	"errors"
	"fmt"

	"parcel-tracker/internal/core/config"
	"parcel-tracker/internal/core/httpclient"
	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/core/proxy"
	trackingadapter "parcel-tracker/internal/features/tracking/adapters"
	"parcel-tracker/internal/features/tracking/domain"
	"parcel-tracker/internal/features/tracking/ports"
	trackingservice "parcel-tracker/internal/features/tracking/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTrackCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track <tracking-number>",
		Short: "Resolve a tracking number into a normalized record",
		Long: `Classify the tracking number, query the configured backends in priority order
and print the normalized record. With --offline no backend is contacted and the
synthetic fallback is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrack(cmd, opts, args[0])
		},
	}
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Skip every backend and use the synthetic fallback")
	return cmd
}

func runTrack(cmd *cobra.Command, opts *options, input string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init("development", opts.logLevel); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	var backends []ports.TrackingBackend
	if !opts.offline {
		client := httpclient.NewClientWithProxy(cfg.Backends.Timeout(), proxy.FromConfig(cfg.Proxy))
		var unknown []string
		backends, unknown = trackingadapter.NewBackends(cfg.Backends, client)
		for _, name := range unknown {
			logger.Get().Warn("Ignoring unknown backend in BACKEND_ORDER", zap.String("backend", name))
		}
	}

	resolver := trackingservice.NewResolver(backends, trackingadapter.NewSyntheticGenerator(nil), cfg.Backends.Timeout(), nil)
	svc := trackingservice.NewTrackingService(resolver, nil)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout())
	defer cancel()

	record, err := svc.Track(ctx, input)
	if err != nil {
		var rejected *domain.RejectedError
		if errors.As(err, &rejected) {
			return fmt.Errorf("%s (hoax detected: %t)", rejected.Reason, rejected.HoaxDetected)
		}
		return err
	}

	return printJSON(cmd.OutOrStdout(), record)
}
