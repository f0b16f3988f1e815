package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Milover/isbnref/internal/batch"
	"github.com/Milover/isbnref/internal/output"
	"github.com/spf13/cobra"
)

// inputs returns the numbers given as arguments, or read from standard
// input, one per line, if there are none.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var in []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); len(line) > 0 {
			in = append(in, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return in, nil
}

// process applies fn to every input and writes the records. Failed inputs
// are written with their error, and an error is returned if any failed.
func process(cmd *cobra.Command, args []string, fn func(string) (output.Record, error)) error {
	in, err := inputs(cmd, args)
	if err != nil {
		return err
	}
	results, err := batch.Run(cmd.Context(), in, cfg.Jobs, fn)
	if err != nil {
		return err
	}

	records := make([]output.Record, len(results))
	for i, r := range results {
		if r.Err != nil {
			records[i] = output.NewRecord(r.Input, "", r.Err)
			continue
		}
		records[i] = r.Value
		records[i].Input = r.Input
	}
	if err := output.Write(cmd.OutOrStdout(), outputFormat, records); err != nil {
		return err
	}
	if failed := batch.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d numbers failed", failed, len(records))
	}
	return nil
}
