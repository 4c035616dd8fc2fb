package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type CmdList struct {
	cmd

	Recursive   []bool   `short:"r" long:"recursive" description:"Descend into directories."`
	Hidden      []bool   `short:"a" long:"all" description:"Include entries whose name starts with a dot."`
	Directories []bool   `short:"d" long:"directories" description:"List directories only."`
	Files       []bool   `short:"f" long:"files" description:"List regular files only."`
	Patterns    []string `short:"p" long:"pattern" value-name:"glob" description:"Only names matching at least one glob."`
	Args        struct {
		Path string `positional-arg-name:"path" required:"true"`
	} `positional-args:"yes"`
}

func (c *CmdList) Execute(args []string) error {
	c.init()

	if optIsTrue(c.Directories) && optIsTrue(c.Files) {
		return fmt.Errorf("--directories and --files are mutually exclusive")
	}

	cfg := loadConfig()
	recursive := optIsTrue(c.Recursive) || cfg.List.Recursive
	hidden := optIsTrue(c.Hidden) || cfg.List.Hidden

	e := expand(c.Args.Path)
	logrus.WithFields(logrus.Fields{
		"path":      e.Path(),
		"recursive": recursive,
		"hidden":    hidden,
	}).Debug("listing directory")

	var names []string
	switch {
	case len(c.Patterns) != 0:
		names = e.ListMatching(c.Patterns, recursive, hidden)
	case optIsTrue(c.Directories):
		names = e.ListDirs(recursive, hidden)
	case optIsTrue(c.Files):
		names = e.ListFiles(recursive, hidden)
	default:
		names = e.ListAll(recursive, hidden)
	}

	for _, name := range names {
		fmt.Println(name)
	}

	return nil
}
