package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/Milover/isbnref/internal/fetch"
	"github.com/Milover/isbnref/internal/isbn"
	"github.com/Milover/isbnref/internal/numdb"
	"github.com/Milover/isbnref/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rangesOut string

var rangesCmd = &cobra.Command{
	Use:   "ranges <command>",
	Short: "Inspect or update the ISBN range database.",
	Long:  "Inspect or update the ISBN range database.",
}

var rangesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download the ISBN ranges and write a range database.",
	Long: `Download the range message from the International ISBN Agency and write
it as a range database, which can be used with --ranges.

The download locations are tried in order until one succeeds.`,
	Args: cobra.NoArgs,
	RunE: rangesUpdate,
}

var rangesInfoCmd = &cobra.Command{
	Use:   "info [ISBN...]",
	Short: "Print the registration group agency of ISBN(s).",
	Long:  "Print the prefix, group and registrant of ISBN(s) with the registration group agency.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, ok := isbn.Ranges().(*numdb.DB)
		if !ok {
			return fmt.Errorf("range database does not carry agency information")
		}
		return process(cmd, args, func(s string) (output.Record, error) {
			n, err := isbn.Validate(s, true)
			if err != nil {
				return output.Record{}, err
			}
			info := db.Info(n[:12])
			values := make([]string, len(info))
			for i, p := range info {
				values[i] = p.Value
			}
			var agency string
			if len(info) > 1 {
				agency = info[1].Props["agency"]
			}
			return output.Record{Result: strings.Join(values, "-") + "\t" + agency}, nil
		})
	},
}

func rangesUpdate(cmd *cobra.Command, args []string) error {
	var b bytes.Buffer
	if err := fetch.UpdateRanges(cmd.Context(), cfg.RangeURLs, &b); err != nil {
		return err
	}
	// make sure the result can be read back
	if _, err := numdb.Parse(bytes.NewReader(b.Bytes())); err != nil {
		return fmt.Errorf("generated range database: %w", err)
	}

	if rangesOut == "-" {
		_, err := cmd.OutOrStdout().Write(b.Bytes())
		return err
	}
	if err := os.WriteFile(rangesOut, b.Bytes(), 0o644); err != nil {
		os.Remove(rangesOut)
		return fmt.Errorf("%w", err)
	}
	zap.S().Infof("%v: range database written", rangesOut)
	return nil
}

func init() {
	rangesUpdateCmd.Flags().StringVar(&rangesOut, "out", "isbn.dat", "output file, '-' for standard output")
	rangesUpdateCmd.Flags().StringSliceVar(&cfg.RangeURLs, "url", cfg.RangeURLs, "range message download location(s)")

	rangesCmd.AddCommand(rangesUpdateCmd, rangesInfoCmd)
	rootCmd.AddCommand(rangesCmd)
}
