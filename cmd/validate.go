package cmd

import (
	"github.com/Milover/isbnref/internal/isbn"
	"github.com/Milover/isbnref/internal/output"
	"github.com/spf13/cobra"
)

var (
	compactConvert  bool
	validateConvert bool
)

var compactCmd = &cobra.Command{
	Use:   "compact [ISBN...]",
	Short: "Print ISBN(s) without separators.",
	Long:  "Print ISBN(s) without separators. The numbers are not validated.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(cmd, args, func(s string) (output.Record, error) {
			return output.Record{Result: isbn.Compact(s, compactConvert)}, nil
		})
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [ISBN...]",
	Short: "Validate ISBN(s) and print their compact form.",
	Long: `Validate ISBN(s) and print their compact form.

The command fails if any of the numbers is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(cmd, args, func(s string) (output.Record, error) {
			n, err := isbn.Validate(s, validateConvert)
			return output.Record{Result: n}, err
		})
	},
}

var typeCmd = &cobra.Command{
	Use:   "type [ISBN...]",
	Short: "Print the type (ISBN10 or ISBN13) of ISBN(s).",
	Long:  "Print the type (ISBN10 or ISBN13) of ISBN(s). Invalid numbers have no type.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(cmd, args, func(s string) (output.Record, error) {
			return output.Record{Result: isbn.TypeOf(s).String()}, nil
		})
	},
}

func init() {
	compactCmd.Flags().BoolVar(&compactConvert, "convert", false, "convert ISBN-10 to ISBN-13")
	validateCmd.Flags().BoolVar(&validateConvert, "convert", false, "convert ISBN-10 to ISBN-13")

	rootCmd.AddCommand(compactCmd, validateCmd, typeCmd)
}
