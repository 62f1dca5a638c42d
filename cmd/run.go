package cmd

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizme/internal/app"
	"github.com/abhisek/quizme/internal/config"
	"github.com/abhisek/quizme/internal/logging"
	"github.com/abhisek/quizme/internal/questionbank"
	"github.com/abhisek/quizme/internal/session"
	"github.com/abhisek/quizme/internal/spacedrep"
	"github.com/abhisek/quizme/internal/store"
)

// runQuiz loads the question file, wires the scheduler, history and
// interface, and runs one session for the learner named in args.
func runQuiz(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	learner := args[0]

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd.Flags(), configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	bank, err := questionbank.LoadFile(cfg.Questions, log)
	if err != nil {
		return err
	}
	if cfg.UI == config.UITUI && len(bank.Skipped) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Skipped %d invalid question records in %s\n",
			len(bank.Skipped), cfg.Questions)
	}

	sched := spacedrep.NewScheduler(spacedrep.NewLogObserver(log))
	for _, q := range bank.Questions {
		if err := sched.AddNew(q); err != nil {
			return fmt.Errorf("track question: %w", err)
		}
	}

	sessionID := uuid.New()
	opts := []session.Option{
		session.WithLogger(log),
		session.WithSessionID(sessionID),
	}

	if !cfg.NoHistory {
		st, err := openHistory(cfg.History)
		if err != nil {
			log.WithError(err).Warn("session history disabled")
		} else {
			defer st.Close()
			repo := st.EventRepo()
			opts = append(opts, session.WithEventRecorder(repo))
			sched.AddObserver(store.NewTierRecorder(repo, sessionID, log))
		}
	}

	ctrl := session.NewController(sched, learner, opts...)

	var summary *session.Summary
	if cfg.UI == config.UITUI {
		summary, err = app.Run(ctx, ctrl)
	} else {
		summary, err = session.Run(ctx, ctrl, session.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout()))
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), summary.String())
	return nil
}

// newLogger builds the run logger. Without a log file the TUI discards log
// output so it cannot draw over the screen.
func newLogger(cfg *config.Config, stderr io.Writer) (*logrus.Logger, func() error, error) {
	fallback := stderr
	if cfg.UI == config.UITUI {
		fallback = io.Discard
	}
	return logging.New(logging.Options{
		Level:    cfg.LogLevel,
		Format:   cfg.LogFormat,
		File:     cfg.LogFile,
		Fallback: fallback,
	})
}

// openHistory opens the session log at path, or at the default data
// location when path is empty.
func openHistory(path string) (*store.Store, error) {
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve history path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, err
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return st, nil
}
