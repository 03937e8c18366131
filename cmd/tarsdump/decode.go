package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tars "github.com/tars-go/tars"
)

func newDecodeCmd() *cobra.Command {
	var structRow int
	var asMap, asList bool
	var keyType, valueType string

	cmd := &cobra.Command{
		Use:   "decode <schema.json> <payload.bin>",
		Short: "Decode a TARS payload against a compiled schema and print the resulting value tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			warnIfMaxStrLenOverridden(cmd)

			schema, err := loadSchema(args[0])
			if err != nil {
				return err
			}
			payload, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}

			value, err := decodeTop(schema, payload, structRow, asMap, asList, keyType, valueType)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(value.Interface())
		},
	}

	cmd.Flags().IntVar(&structRow, "struct-row", -1, "decode a top-level struct whose schema row is this index")
	cmd.Flags().BoolVar(&asList, "list", false, "decode the payload as a top-level list")
	cmd.Flags().BoolVar(&asMap, "map", false, "decode the payload as a top-level map")
	cmd.Flags().StringVar(&keyType, "key-type", "string", "map key kind, used with --map")
	cmd.Flags().StringVar(&valueType, "value-type", "i32", "list element kind or map value kind")
	return cmd
}

func decodeTop(schema *tars.Schema, payload []byte, structRow int, asMap, asList bool, keyType, valueType string) (tars.Value, error) {
	switch {
	case structRow >= 0:
		return tars.DecodeStructTop(schema, tars.TypeMax+tars.Kind(structRow), payload)
	case asList:
		elemKind, err := parseKind(valueType)
		if err != nil {
			return tars.Value{}, err
		}
		return tars.DecodeListTop(schema, elemKind, payload)
	case asMap:
		kKind, err := parseKind(keyType)
		if err != nil {
			return tars.Value{}, err
		}
		vKind, err := parseKind(valueType)
		if err != nil {
			return tars.Value{}, err
		}
		return tars.DecodeMapTop(schema, kKind, vKind, payload)
	default:
		return tars.Value{}, fmt.Errorf("specify one of --struct-row, --list, or --map")
	}
}
