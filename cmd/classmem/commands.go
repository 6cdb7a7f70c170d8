package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/agenthands/classmem/internal/config"
	"github.com/agenthands/classmem/internal/core"
	"github.com/agenthands/classmem/internal/driver"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type options struct {
	configPath string
	source     string
	path       string
	url        string
	delay      string
	output     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "classmem",
		Short:         "Browse the class memory dataset",
		Long:          "Query students, events, gallery media, recent memories and the yearly timeline of a class memory dataset.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file (default: $CONFIG_PATH or config/config.toml)")
	flags.StringVar(&opts.source, "source", "", "data source kind: embedded, file, http, memgraph, minio")
	flags.StringVar(&opts.path, "path", "", "dataset file for the file source")
	flags.StringVar(&opts.url, "url", "", "dataset url for the http source")
	flags.StringVar(&opts.delay, "delay", "", "artificial latency added to the fetch, e.g. 300ms")
	flags.StringVarP(&opts.output, "output", "o", "json", "output format: json or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log dataset loading")
	root.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "yaml"}, cobra.ShellCompDirectiveDefault
	})

	root.AddCommand(
		queryCmd(opts, "students", "List all students", cobra.NoArgs,
			func(ctx context.Context, s *core.Store, args []string) (any, error) {
				return s.Students(ctx), nil
			}),
		queryCmd(opts, "student <id>", "Show one student", cobra.ExactArgs(1),
			func(ctx context.Context, s *core.Store, args []string) (any, error) {
				st, ok := s.StudentRef(ctx, args[0])
				if !ok {
					return nil, fmt.Errorf("student %q not found", args[0])
				}
				return st, nil
			}),
		queryCmd(opts, "events", "List all events", cobra.NoArgs,
			func(ctx context.Context, s *core.Store, args []string) (any, error) {
				return s.Events(ctx), nil
			}),
		queryCmd(opts, "event <id>", "Show one event with its media", cobra.ExactArgs(1),
			func(ctx context.Context, s *core.Store, args []string) (any, error) {
				ev, ok := s.EventRef(ctx, args[0])
				if !ok {
					return nil, fmt.Errorf("event %q not found", args[0])
				}
				return ev, nil
			}),
		queryCmd(opts, "gallery", "Show recent and featured gallery media", cobra.NoArgs,
			func(ctx context.Context, s *core.Store, args []string) (any, error) {
				return s.Gallery(ctx), nil
			}),
		queryCmd(opts, "recent", "Show up to eight shuffled recent memories", cobra.NoArgs,
			func(ctx context.Context, s *core.Store, args []string) (any, error) {
				return s.RecentMemories(ctx), nil
			}),
		queryCmd(opts, "search [query]", "Search student names and bios, then event titles and descriptions", cobra.MaximumNArgs(1),
			func(ctx context.Context, s *core.Store, args []string) (any, error) {
				query := ""
				if len(args) == 1 {
					query = args[0]
				}
				return s.Search(ctx, query), nil
			}),
		queryCmd(opts, "timeline", "Group events by year", cobra.NoArgs,
			func(ctx context.Context, s *core.Store, args []string) (any, error) {
				return s.Timeline(ctx), nil
			}),
		seedCmd(opts),
	)

	return root
}

type queryFunc func(ctx context.Context, s *core.Store, args []string) (any, error)

func queryCmd(opts *options, use, short string, args cobra.PositionalArgs, fn queryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, argv []string) error {
			if err := checkOutput(opts.output); err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			src, err := driver.NewSource(ctx, cfg)
			if err != nil {
				return err
			}
			defer driver.CloseSource(ctx, src)

			store := core.New(src, core.WithLogger(opts.logger(cmd.ErrOrStderr())))
			result, err := fn(ctx, store, argv)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, result)
		},
	}
}

func seedCmd(opts *options) *cobra.Command {
	var indices bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy the dataset of the configured source into Memgraph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, argv []string) error {
			ctx := cmd.Context()
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Source.Kind == config.SourceMemgraph {
				return fmt.Errorf("seed needs a source other than memgraph")
			}

			src, err := driver.NewSource(ctx, cfg)
			if err != nil {
				return err
			}
			defer driver.CloseSource(ctx, src)

			ds, err := src.FetchDataset(ctx)
			if err != nil {
				return fmt.Errorf("load dataset from %s: %w", src.Name(), err)
			}

			d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
			if err != nil {
				return fmt.Errorf("failed to connect to Memgraph: %w", err)
			}
			defer d.Close(ctx)

			if indices {
				if err := d.BuildIndices(ctx); err != nil {
					return err
				}
			}
			if err := driver.Seed(ctx, d, ds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d students and %d events from %s\n",
				len(ds.Students), len(ds.Events), src.Name())
			return nil
		},
	}
	cmd.Flags().BoolVar(&indices, "build-indices", false, "create lookup indices before seeding")
	return cmd
}

func (o *options) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.toml"
	}

	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)

	if o.source != "" {
		cfg.Source.Kind = o.source
	}
	if o.path != "" {
		cfg.Source.Path = o.path
		if o.source == "" {
			cfg.Source.Kind = config.SourceFile
		}
	}
	if o.url != "" {
		cfg.Source.URL = o.url
		if o.source == "" {
			cfg.Source.Kind = config.SourceHTTP
		}
	}
	if o.delay != "" {
		cfg.Source.Delay = o.delay
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelError
	if o.verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func checkOutput(format string) error {
	switch format {
	case "json", "yaml":
		return nil
	}
	return fmt.Errorf("unsupported output format %q (want json or yaml)", format)
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
