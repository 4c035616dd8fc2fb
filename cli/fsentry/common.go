package main

import (
	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"

	"gopkg.in/fsentry.v1"
)

type cmd struct {
	Verbose bool `short:"v" description:"Activates the verbose mode"`
}

func (c *cmd) init() {
	logrus.SetLevel(logrus.WarnLevel)
	if c.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// expand resolves a leading tilde to the user home directory and returns
// an entry for the result.
func expand(path string) *fsentry.Entry {
	expanded, err := homedir.Expand(path)
	if err != nil {
		logrus.WithError(err).Debug("cannot expand home directory")
		expanded = path
	}

	return fsentry.New(expanded)
}

func optIsTrue(b []bool) bool {
	return len(b) != 0 && b[len(b)-1]
}
