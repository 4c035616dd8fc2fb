package main

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type CmdDiff struct {
	cmd

	Args struct {
		From string `positional-arg-name:"from" required:"true"`
		To   string `positional-arg-name:"to" required:"true"`
	} `positional-args:"yes"`
}

func (c *CmdDiff) Execute(args []string) error {
	c.init()

	from, err := expand(c.Args.From).Read()
	if err != nil {
		return err
	}

	to, err := expand(c.Args.To).Read()
	if err != nil {
		return err
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	fmt.Print(dmp.DiffPrettyText(diffs))

	return nil
}
