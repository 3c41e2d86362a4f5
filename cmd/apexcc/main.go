// Command apexcc batch-translates Apex source files to ASTs.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	cmd := newRootCmd(&env{fs: afero.NewOsFs(), log: log})
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
