package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vroute/internal/config"
	"github.com/vango-dev/vroute/internal/demo"
	"github.com/vango-dev/vroute/pkg/snapshot"
)

func snapshotCmd(g *globals) *cobra.Command {
	var (
		outDir string
		bucket string
		prefix string
		region string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot [path...]",
		Short: "Render the demo application to static HTML",
		Long: `Render the demo application at each path and store one HTML document
per path, to a directory or an S3 bucket. Paths default to snapshot.paths
from the config.

S3 credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN.

Examples:
  vroute snapshot / /about /profile/settings
  vroute snapshot --out public
  vroute snapshot --bucket my-site --prefix pages --region eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := g.cfg
			if outDir != "" {
				cfg.Snapshot.Dir = outDir
			}
			if bucket != "" {
				cfg.Snapshot.S3.Bucket = bucket
			}
			if prefix != "" {
				cfg.Snapshot.S3.Prefix = prefix
			}
			if region != "" {
				cfg.Snapshot.S3.Region = region
			}
			if cfg.UseS3() && cfg.Snapshot.S3.Region == "" {
				cfg.Snapshot.S3.Region = config.DefaultRegion
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var store snapshot.Store
			if cfg.UseS3() {
				client, err := snapshot.NewS3Client(ctx, cfg.Snapshot.S3.Region)
				if err != nil {
					return err
				}
				store = snapshot.NewS3Store(client, cfg.Snapshot.S3.Bucket, cfg.Snapshot.S3.Prefix)
			} else {
				store = snapshot.NewDiskStore(cfg.SnapshotDir())
			}

			opts := []snapshot.Option{
				snapshot.WithLogger(g.logger),
				snapshot.WithTitle(func(path string) string {
					return demo.Title(path) + " · " + cfg.Name
				}),
			}
			if pretty {
				opts = append(opts, snapshot.WithPretty("  "))
			}

			paths := args
			if len(paths) == 0 {
				paths = cfg.Snapshot.Paths
			}

			results, err := snapshot.New(demo.App, store, opts...).Snapshot(ctx, paths)
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s -> %s (%d bytes)\n", r.Path, r.Location, r.Bytes)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Upload to this S3 bucket instead of a directory")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "", "S3 region")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")

	return cmd
}
