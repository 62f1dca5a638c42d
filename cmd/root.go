package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizme/internal/config"
)

var rootCmd = newRootCmd()

// newRootCmd builds the command tree. The quiz itself runs from the root
// command; check and version are subcommands.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quizme NAME",
		Short: "Adaptive spaced-repetition quiz",
		Long: "quizme runs an adaptive quiz session over a JSON question file. Questions you\n" +
			"miss come back sooner, questions you know are retired.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runQuiz,
	}

	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	config.RegisterFlags(root.Flags())

	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return rootCmd.Execute()
}
