package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rrgraph/internal/builder"
	"rrgraph/internal/loader"
	"rrgraph/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch SPEC",
	Short: "Rebuild a graph whenever its build spec changes.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		if out == "" || out == "-" {
			return errors.New("watch needs an output file")
		}
		format := outputFormat(cmd)
		specPath := args[0]

		if err := rebuild(specPath, format, out); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		w := watcher.New(specPath, func() error {
			return rebuild(specPath, format, out)
		}, watcher.WithDebounce(cfg.Watch.Debounce.Duration()))

		if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringP("output", "o", "", "output file")
	watchCmd.Flags().String("format", "", "output format: capnp, yaml or json (default: from config)")
	watchCmd.Flags().Bool("packed", false, "use packed Cap'n Proto encoding")
}

func rebuild(specPath, format, out string) error {
	spec, err := loader.LoadBuildSpec(specPath, cfg.Tool.Domain())
	if err != nil {
		return err
	}

	g, err := builder.Build(spec)
	if err != nil {
		return err
	}

	if err := writeGraph(g, format, out, nil); err != nil {
		return err
	}

	log.Printf("Wrote %s: %d nodes, %d edges", out, len(g.Nodes), len(g.Edges))
	return nil
}
