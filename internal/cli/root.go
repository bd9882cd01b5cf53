package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shaiso/Starfield/internal/telemetry"
)

// NewRootCmd создаёт команду starfield PATH.
//
// logger и cfg передаются снаружи; sinks, если nil, собираются из cfg.
func NewRootCmd(version string, logger *slog.Logger, cfg Config, sinks []Sink) *cobra.Command {
	return &cobra.Command{
		Use:           "starfield PATH",
		Short:         "Sum of distances between galaxies in an expanding starfield",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics := telemetry.NewMetrics()
			if sinks == nil {
				sinks = NewSinks(cfg, metrics, logger)
			}

			r := &Runner{
				Output:  NewOutput(cmd.OutOrStdout()),
				Logger:  logger,
				Metrics: metrics,
				Sinks:   sinks,
			}

			_, err := r.Run(cmd.Context(), args[0])
			return err
		},
	}
}
