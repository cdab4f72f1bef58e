package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nyashahama/wellbeing-risk-engine/internal/chat"
	"github.com/nyashahama/wellbeing-risk-engine/internal/instrument"
	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
	"github.com/nyashahama/wellbeing-risk-engine/internal/scoring"
)

func scoreInstrument(cmd *cobra.Command, def instrument.Definition) (scoring.Result, error) {
	var sub scoring.Submission
	if err := readInput(cmd, &sub); err != nil {
		return scoring.Result{}, err
	}
	return sub.Score(def)
}

func newQuestionnaireCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "questionnaire",
		Short: "Score the 8-item check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def := instrument.CheckInV1
			res, err := scoreInstrument(cmd, def)
			if err != nil {
				return err
			}
			return writeOutput(cmd, res.CheckInSummary(def))
		},
	}
}

func newWellbeingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wellbeing",
		Short: "Score the sectioned wellbeing instrument",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def := instrument.WellbeingV1
			res, err := scoreInstrument(cmd, def)
			if err != nil {
				return err
			}
			return writeOutput(cmd, res.WellbeingSummary(def))
		},
	}
}

func newPredictCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Run the rule-based composite predictor on a feature vector",
		Long: `Validates the features exactly as POST /api/predict does and prints the
level together with the awarded points and their reasons.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in risk.FeaturesInput
			if err := readInput(cmd, &in); err != nil {
				return err
			}
			f, err := in.Features()
			if err != nil {
				return err
			}
			return writeOutput(cmd, risk.Assess(f))
		},
	}
}

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat [message]",
		Short: "Classify chat messages by crisis severity",
		Long: `With an argument, classifies that one message. Without one, classifies
each line of stdin and prints one JSON object per line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return writeOutput(cmd, severityLine{Content: args[0], Severity: chat.DetectSeverity(args[0])})
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if err := writeOutput(cmd, severityLine{Content: line, Severity: chat.DetectSeverity(line)}); err != nil {
					return err
				}
			}
			return sc.Err()
		},
	}
}

type severityLine struct {
	Content  string     `json:"content"`
	Severity risk.Level `json:"severity"`
}

func newInstrumentCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "instrument <id>",
		Short:     "Print an instrument definition",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{instrument.IDCheckIn, instrument.IDWellbeing},
		RunE: func(cmd *cobra.Command, args []string) error {
			def, ok := instrument.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown instrument %q", args[0])
			}
			return writeOutput(cmd, def)
		},
	}
}
