package main

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	var structRow int

	cmd := &cobra.Command{
		Use:   "diff <schema-a.json> <schema-b.json> <payload.bin>",
		Short: "Decode a payload under two schema versions and print the structural diff",
		Long: "Decodes the same payload against two compiled schemas and prints the\n" +
			"difference between the resulting value trees, exercising the\n" +
			"forward/backward-compatibility guarantee: a payload produced under one\n" +
			"schema version should decode cleanly, with unknown fields skipped and\n" +
			"missing fields defaulted, under another.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			warnIfMaxStrLenOverridden(cmd)

			schemaA, err := loadSchema(args[0])
			if err != nil {
				return fmt.Errorf("schema A: %w", err)
			}
			schemaB, err := loadSchema(args[1])
			if err != nil {
				return fmt.Errorf("schema B: %w", err)
			}
			payload, err := os.ReadFile(args[2])
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}

			valA, err := decodeTop(schemaA, payload, structRow, false, false, "", "")
			if err != nil {
				return fmt.Errorf("decode under schema A: %w", err)
			}
			valB, err := decodeTop(schemaB, payload, structRow, false, false, "", "")
			if err != nil {
				return fmt.Errorf("decode under schema B: %w", err)
			}

			diff := cmp.Diff(valA.Interface(), valB.Interface())
			if diff == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no structural difference")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), diff)
			return nil
		},
	}

	cmd.Flags().IntVar(&structRow, "struct-row", 0, "schema row of the struct to decode under both schemas")
	return cmd
}
