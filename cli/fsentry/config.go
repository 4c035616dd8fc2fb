package main

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/src-d/gcfg"
)

const rcName = ".fsentryrc"

// rcConfig holds the user defaults read from ~/.fsentryrc, an INI style
// file with one section per command:
//
//	[list]
//	hidden = true
//	recursive = false
//
//	[rm]
//	recursive = true
type rcConfig struct {
	List struct {
		Hidden    bool
		Recursive bool
	}
	Mkdir struct {
		Recursive bool
	}
	Rm struct {
		Recursive bool
	}
}

func loadConfig() *rcConfig {
	cfg := &rcConfig{}

	home, err := homedir.Dir()
	if err != nil {
		logrus.WithError(err).Debug("cannot locate the home directory")
		return cfg
	}

	path := filepath.Join(home, rcName)
	if _, err := os.Stat(path); err != nil {
		return cfg
	}

	if err := gcfg.ReadFileInto(cfg, path); err != nil {
		logrus.WithError(err).Warn("cannot parse the rc file")
	}

	return cfg
}
