package cmd

import (
	"github.com/Milover/isbnref/internal/isbn"
	"github.com/Milover/isbnref/internal/output"
	"github.com/spf13/cobra"
)

var (
	splitConvert    bool
	formatConvert   bool
	formatSeparator string
)

var splitCmd = &cobra.Command{
	Use:   "split [ISBN...]",
	Short: "Split ISBN(s) into their parts.",
	Long: `Split ISBN(s) into their EAN.UCC prefix, registration group, registrant,
item and check digit. The EAN.UCC prefix of an ISBN-10 is empty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(cmd, args, func(s string) (output.Record, error) {
			p, err := isbn.Split(s, splitConvert)
			if err != nil {
				return output.Record{}, err
			}
			return output.Record{Parts: p.Slice()}, nil
		})
	},
}

var formatCmd = &cobra.Command{
	Use:   "format [ISBN...]",
	Short: "Print ISBN(s) with separators between their parts.",
	Long:  "Print ISBN(s) with separators between their parts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(cmd, args, func(s string) (output.Record, error) {
			n, err := isbn.Format(s, formatSeparator, formatConvert)
			return output.Record{Result: n}, err
		})
	},
}

func init() {
	splitCmd.Flags().BoolVar(&splitConvert, "convert", false, "convert ISBN-10 to ISBN-13")
	formatCmd.Flags().BoolVar(&formatConvert, "convert", false, "convert ISBN-10 to ISBN-13")
	formatCmd.Flags().StringVarP(&formatSeparator, "separator", "s", "-", "separator placed between the parts")

	rootCmd.AddCommand(splitCmd, formatCmd)
}
