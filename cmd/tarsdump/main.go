// Command tarsdump inspects compiled schemas and decodes TARS-encoded
// payloads for debugging, mirroring the ad hoc dump/decode tools the
// codec's original C host kept alongside the library itself.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	tars "github.com/tars-go/tars"
)

var logger = slog.Default()

func main() {
	root := &cobra.Command{
		Use:   "tarsdump",
		Short: "Inspect TARS schemas and decode TARS payloads",
	}
	root.PersistentFlags().Int("max-str-len", tars.MaxStrLen, "maximum accepted string payload length in bytes")

	root.AddCommand(newDumpCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newDiffCmd())

	if err := root.Execute(); err != nil {
		logger.Error("tarsdump failed", "error", err)
		os.Exit(1)
	}
}
