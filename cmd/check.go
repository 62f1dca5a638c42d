package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizme/internal/question"
	"github.com/abhisek/quizme/internal/questionbank"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a question file without starting a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Skips are listed below; the logger would only repeat them.
			log := logrus.New()
			log.SetOutput(io.Discard)

			bank, err := questionbank.LoadFile(args[0], log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d loaded, %d skipped\n", args[0], len(bank.Questions), len(bank.Skipped))

			kinds := map[question.Kind]int{}
			for _, q := range bank.Questions {
				kinds[q.Kind()]++
			}
			for _, k := range []question.Kind{question.KindShortAnswer, question.KindTrueFalse} {
				if kinds[k] > 0 {
					fmt.Fprintf(out, "  %-12s %d\n", k, kinds[k])
				}
			}
			for _, s := range bank.Skipped {
				fmt.Fprintf(out, "  skipped %s\n", s)
			}
			return nil
		},
	}
}
