package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/dogceo-go/internal/config"
	"github.com/samvad-hq/dogceo-go/internal/logger"
	"github.com/samvad-hq/dogceo-go/pkg/dogceo"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	baseURL string
	timeout time.Duration
	output  string
	verbose bool
}

func newRootCommand(out io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "dogceo",
		Short:         "Query the dog.ceo image catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "API origin (default from DOGCEO_BASE_URL or "+dogceo.DefaultBaseURL+")")
	root.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "per-request timeout (default from HTTP_TIMEOUT_SECONDS)")
	root.PersistentFlags().StringVarP(&flags.output, "output", "o", formatText, "output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log each request to stderr")

	root.AddCommand(
		randomCommand(flags),
		breedCommand(flags),
		subBreedCommand(flags),
		breedsCommand(flags),
		subBreedsCommand(flags),
	)
	return root
}

// newClient resolves the client from config, with flags taking precedence.
func (f *globalFlags) newClient() (*dogceo.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	baseURL := cfg.BaseURL
	if f.baseURL != "" {
		baseURL = f.baseURL
	}
	timeout := cfg.HTTPTimeout
	if f.timeout > 0 {
		timeout = f.timeout
	}

	opts := []dogceo.Option{dogceo.WithBaseURL(baseURL), dogceo.WithTimeout(timeout)}
	if f.verbose {
		cfg.LogLevel = "debug"
		log, err := logger.Init(cfg)
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
		opts = append(opts, dogceo.WithLogger(log))
	}
	return dogceo.New(opts...), nil
}

// runWith builds the client, runs fn and renders its result.
func (f *globalFlags) runWith(cmd *cobra.Command, fn func(ctx context.Context, c *dogceo.Client) (any, error)) error {
	client, err := f.newClient()
	if err != nil {
		return err
	}
	if f.verbose {
		defer logger.Close()
	}
	result, err := fn(cmd.Context(), client)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), f.output, result)
}

func randomCommand(flags *globalFlags) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Random image(s) from the whole catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return flags.runWith(cmd, func(ctx context.Context, c *dogceo.Client) (any, error) {
				if count > 0 {
					return c.RandomImages(ctx, count)
				}
				return c.RandomImage(ctx)
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of images (the API caps this at 50)")
	return cmd
}

func breedCommand(flags *globalFlags) *cobra.Command {
	var (
		count int
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "breed <breed>",
		Short: "Image(s) of a breed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.runWith(cmd, func(ctx context.Context, c *dogceo.Client) (any, error) {
				switch {
				case all:
					return c.ImagesByBreed(ctx, args[0])
				case count > 0:
					return c.RandomImagesByBreed(ctx, args[0], count)
				default:
					return c.RandomImageByBreed(ctx, args[0])
				}
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of random images")
	cmd.Flags().BoolVar(&all, "all", false, "list every image of the breed")
	cmd.MarkFlagsMutuallyExclusive("count", "all")
	return cmd
}

func subBreedCommand(flags *globalFlags) *cobra.Command {
	var (
		count int
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "sub-breed <breed> <sub-breed>",
		Short: "Image(s) of a sub-breed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.runWith(cmd, func(ctx context.Context, c *dogceo.Client) (any, error) {
				switch {
				case all:
					return c.ImagesBySubBreed(ctx, args[0], args[1])
				case count > 0:
					return c.RandomImagesBySubBreed(ctx, args[0], args[1], count)
				default:
					return c.RandomImageBySubBreed(ctx, args[0], args[1])
				}
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of random images")
	cmd.Flags().BoolVar(&all, "all", false, "list every image of the sub-breed")
	cmd.MarkFlagsMutuallyExclusive("count", "all")
	return cmd
}

func breedsCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "breeds",
		Short: "List every breed with its sub-breeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return flags.runWith(cmd, func(ctx context.Context, c *dogceo.Client) (any, error) {
				return c.Breeds(ctx)
			})
		},
	}
}

func subBreedsCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sub-breeds <breed>",
		Short: "List the sub-breeds of a breed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.runWith(cmd, func(ctx context.Context, c *dogceo.Client) (any, error) {
				return c.SubBreeds(ctx, args[0])
			})
		},
	}
}
