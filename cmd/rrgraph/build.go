package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rrgraph/internal/builder"
	"rrgraph/internal/codec"
	"rrgraph/internal/domain"
	"rrgraph/internal/loader"
	"rrgraph/internal/repository/sqlite"
	"rrgraph/internal/service"
)

var buildCmd = &cobra.Command{
	Use:   "build SPEC",
	Short: "Build a routing resource graph from a build spec.",
	Long: "`build SPEC -o OUT` lays out the tracks described by SPEC and writes " +
		"the graph to OUT, or to stdout when OUT is empty or \"-\".",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		save, _ := cmd.Flags().GetBool("save")
		format := outputFormat(cmd)

		spec, err := loader.LoadBuildSpec(args[0], cfg.Tool.Domain())
		if err != nil {
			return err
		}

		var g *domain.Graph
		if save {
			g, err = buildAndSave(cmd, spec)
		} else {
			g, err = builder.Build(spec)
		}
		if err != nil {
			return err
		}

		if err := writeGraph(g, format, out, cmd.OutOrStdout()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Built %d nodes, %d edges (%s)\n", len(g.Nodes), len(g.Edges), format)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	buildCmd.Flags().String("format", "", "output format: capnp, yaml or json (default: from config)")
	buildCmd.Flags().Bool("packed", false, "use packed Cap'n Proto encoding")
	buildCmd.Flags().Bool("save", false, "also store the graph in the database")
	buildCmd.Flags().String("db", "", "SQLite database path (default: from config)")
}

// outputFormat resolves the codec name from flags, falling back to config
func outputFormat(cmd *cobra.Command) string {
	output := cfg.Output
	if cmd.Flags().Changed("format") {
		output.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("packed") {
		output.Packed, _ = cmd.Flags().GetBool("packed")
	}

	resolved := *cfg
	resolved.Output = output
	return resolved.OutputFormat()
}

func buildAndSave(cmd *cobra.Command, spec *domain.BuildSpec) (*domain.Graph, error) {
	dbPath := cfg.Database.Path
	if cmd.Flags().Changed("db") {
		dbPath, _ = cmd.Flags().GetString("db")
	}

	repo, err := sqlite.New(dbPath)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	svc := service.NewGraphService(repo, service.NewEventBus())
	id, g, err := svc.BuildGraph(context.Background(), spec)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Saved graph %s to %s\n", id, dbPath)
	return g, nil
}

// writeGraph encodes g to path, or to stdout when path is empty or "-". Files
// are replaced atomically.
func writeGraph(g *domain.Graph, format, path string, stdout io.Writer) error {
	c, err := codec.Lookup(format)
	if err != nil {
		return err
	}

	if path == "" || path == "-" {
		return c.Export(g, stdout)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := c.Export(g, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
