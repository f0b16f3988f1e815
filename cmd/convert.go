package cmd

import (
	"github.com/Milover/isbnref/internal/isbn"
	"github.com/Milover/isbnref/internal/output"
	"github.com/spf13/cobra"
)

var to13Cmd = &cobra.Command{
	Use:   "to13 [ISBN...]",
	Short: "Convert ISBN-10(s) to ISBN-13.",
	Long:  "Convert ISBN-10(s) to ISBN-13, keeping the separators of the input.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(cmd, args, func(s string) (output.Record, error) {
			n, err := isbn.ToISBN13(s)
			return output.Record{Result: n}, err
		})
	},
}

var to10Cmd = &cobra.Command{
	Use:   "to10 [ISBN...]",
	Short: "Convert ISBN-13(s) to ISBN-10.",
	Long: `Convert ISBN-13(s) to ISBN-10, keeping the separators of the input.

Only numbers with the 978 prefix have an ISBN-10 form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(cmd, args, func(s string) (output.Record, error) {
			n, err := isbn.ToISBN10(s)
			return output.Record{Result: n}, err
		})
	},
}

func init() {
	rootCmd.AddCommand(to13Cmd, to10Cmd)
}
