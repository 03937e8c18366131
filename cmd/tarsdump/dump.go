package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	tars "github.com/tars-go/tars"
)

func newDumpCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dump <schema.json>",
		Short: "Print a compiled schema's field table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			warnIfMaxStrLenOverridden(cmd)

			schema, err := loadSchema(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(schema.DumpRows())
			}

			fmt.Fprint(cmd.OutOrStdout(), schema.Dump())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit structured RowDump records instead of tab-separated text")
	return cmd
}

func warnIfMaxStrLenOverridden(cmd *cobra.Command) {
	n, _ := cmd.Flags().GetInt("max-str-len")
	if n != tars.MaxStrLen {
		logger.Warn("max-str-len flag does not change the codec's compiled-in limit; rebuild to adjust it", "requested", n, "compiled", tars.MaxStrLen)
	}
}
