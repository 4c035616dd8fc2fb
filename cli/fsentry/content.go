package main

import (
	"fmt"
	"io/ioutil"
	"os"
)

type CmdRead struct {
	cmd

	Args struct {
		Path string `positional-arg-name:"path" required:"true"`
	} `positional-args:"yes"`
}

func (c *CmdRead) Execute(args []string) error {
	c.init()

	content, err := expand(c.Args.Path).Read()
	if err != nil {
		return err
	}

	fmt.Print(content)
	return nil
}

type CmdWrite struct {
	cmd

	Args struct {
		Path string `positional-arg-name:"path" required:"true"`
	} `positional-args:"yes"`
}

func (c *CmdWrite) Execute(args []string) error {
	c.init()

	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	return expand(c.Args.Path).Write(string(data))
}

type CmdAppend struct {
	cmd

	Args struct {
		Path string `positional-arg-name:"path" required:"true"`
	} `positional-args:"yes"`
}

func (c *CmdAppend) Execute(args []string) error {
	c.init()

	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	return expand(c.Args.Path).Append(string(data))
}
