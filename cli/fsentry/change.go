package main

import (
	"fmt"
	"os"
	"strconv"

	homedir "github.com/mitchellh/go-homedir"
)

type CmdTouch struct {
	cmd

	Force []bool `short:"f" long:"force" description:"Truncate the file when it already exists."`
	Args  struct {
		Path string `positional-arg-name:"path" required:"true"`
	} `positional-args:"yes"`
}

func (c *CmdTouch) Execute(args []string) error {
	c.init()

	e := expand(c.Args.Path)
	if !e.MakeFile(optIsTrue(c.Force)) {
		return fmt.Errorf("cannot create file %s", e)
	}

	return nil
}

type CmdMkdir struct {
	cmd

	Recursive []bool `short:"p" long:"parents" description:"Create missing parent directories too."`
	Mode      string `short:"m" long:"mode" value-name:"octal" default:"0775" description:"Permissions for the new directories."`
	Args      struct {
		Path string `positional-arg-name:"path" required:"true"`
	} `positional-args:"yes"`
}

func (c *CmdMkdir) Execute(args []string) error {
	c.init()

	mode, err := strconv.ParseUint(c.Mode, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid mode %q", c.Mode)
	}

	cfg := loadConfig()
	recursive := optIsTrue(c.Recursive) || cfg.Mkdir.Recursive

	e := expand(c.Args.Path)
	if !e.MakeDirectory(recursive, os.FileMode(mode)) {
		return fmt.Errorf("cannot create directory %s", e)
	}

	return nil
}

type CmdMove struct {
	cmd

	Force []bool `short:"f" long:"force" description:"Overwrite the destination when it exists."`
	Args  struct {
		Source      string `positional-arg-name:"source" required:"true"`
		Destination string `positional-arg-name:"destination" required:"true"`
	} `positional-args:"yes"`
}

func (c *CmdMove) Execute(args []string) error {
	c.init()

	dest, err := homedir.Expand(c.Args.Destination)
	if err != nil {
		dest = c.Args.Destination
	}

	e := expand(c.Args.Source)
	if !e.Move(dest, optIsTrue(c.Force)) {
		return fmt.Errorf("cannot move %s to %s", c.Args.Source, dest)
	}

	return nil
}

type CmdRemove struct {
	cmd

	Recursive []bool `short:"r" long:"recursive" description:"Remove a directory along with its contents."`
	Args      struct {
		Path string `positional-arg-name:"path" required:"true"`
	} `positional-args:"yes"`
}

func (c *CmdRemove) Execute(args []string) error {
	c.init()

	cfg := loadConfig()
	recursive := optIsTrue(c.Recursive) || cfg.Rm.Recursive

	e := expand(c.Args.Path)

	var ok bool
	if e.IsDir() {
		ok = e.RemoveDirectory(recursive)
	} else {
		ok = e.RemoveFile()
	}

	if !ok {
		return fmt.Errorf("cannot remove %s", e)
	}

	return nil
}
