package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rrgraph/internal/codec"
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print a Cap'n Proto graph file as YAML or JSON.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		packed, _ := cmd.Flags().GetBool("packed")

		out, err := codec.Lookup(format)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		g, err := codec.NewCapnpCodec(packed).Parse(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		return out.Export(g, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().String("format", "yaml", "output format: yaml or json")
	dumpCmd.Flags().Bool("packed", false, "input uses packed Cap'n Proto encoding")
}
