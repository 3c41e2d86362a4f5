package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// env carries the filesystem and logger so tests can run commands against
// an in-memory filesystem.
type env struct {
	fs  afero.Fs
	log *logrus.Logger
}

func newRootCmd(e *env) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "apexcc",
		Short:         "Translate Apex sources into ASTs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				e.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newTranslateCmd(e))
	return root
}
