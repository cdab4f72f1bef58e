package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "riskctl",
		Short: "Score wellbeing instruments and risk features from the command line.",
		Long: `riskctl runs the same scorer, predictor and crisis detector as the API server.
Input is JSON read from --file, or from stdin when --file is omitted or "-".
Output is JSON on stdout.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("file", "f", "-", "input JSON file, - for stdin")
	cmd.PersistentFlags().Bool("pretty", false, "indent JSON output")

	cmd.AddCommand(
		newQuestionnaireCommand(),
		newWellbeingCommand(),
		newPredictCommand(),
		newChatCommand(),
		newInstrumentCommand(),
	)
	return cmd
}

// readInput decodes the --file input into dst, rejecting unknown fields.
func readInput(cmd *cobra.Command, dst any) error {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	return nil
}

// writeOutput encodes v to the command's stdout.
func writeOutput(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
