package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vango-dev/html5el/pkg/document"
	"github.com/vango-dev/html5el/pkg/publish"
)

func publishCmd(a *app) *cobra.Command {
	var (
		bucket   string
		prefix   string
		region   string
		endpoint string
	)

	cmd := &cobra.Command{
		Use:   "publish <file>...",
		Short: "Render documents and upload them to S3",
		Long: `Render document descriptions and upload the HTML to an S3 bucket.

Each file is stored under <prefix><path>.html. Credentials are read
from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.

Examples:
  html5el publish index.yaml --bucket my-site
  html5el publish docs/*.yaml --bucket my-site --prefix pages/
  html5el publish page.json --bucket test --endpoint http://localhost:9000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Publish
			if cmd.Flags().Changed("bucket") {
				cfg.Bucket = bucket
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Prefix = prefix
			}
			if cmd.Flags().Changed("region") {
				cfg.Region = region
			}
			if cmd.Flags().Changed("endpoint") {
				cfg.Endpoint = endpoint
			}

			p, err := publish.New(publish.NewClient(cfg.Region, cfg.Endpoint), publish.Config{
				Bucket: cfg.Bucket,
				Prefix: cfg.Prefix,
				Logger: a.logger,
			})
			if err != nil {
				return err
			}

			opts := document.Options{Defaults: a.cfg.ElementOptions()}
			for _, file := range args {
				res, err := p.PublishFile(cmd.Context(), file, opts)
				if err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "s3://%s/%s (%s)", res.Bucket, res.Key, humanize.Bytes(uint64(res.Bytes)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Destination bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix, e.g. site/")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default us-east-1)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")

	return cmd
}
