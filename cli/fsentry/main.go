package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

const bin = "fsentry"

func main() {
	parser := flags.NewNamedParser(bin, flags.Default)
	parser.AddCommand("stat", "Show what a path points to.", "", &CmdStat{})
	parser.AddCommand("list", "List a directory.", "", &CmdList{})
	parser.AddCommand("read", "Print the content of a file.", "", &CmdRead{})
	parser.AddCommand("write", "Replace the content of a file with stdin.", "", &CmdWrite{})
	parser.AddCommand("append", "Append stdin to a file.", "", &CmdAppend{})
	parser.AddCommand("touch", "Create an empty file.", "", &CmdTouch{})
	parser.AddCommand("mkdir", "Create a directory.", "", &CmdMkdir{})
	parser.AddCommand("mv", "Move or rename an entry.", "", &CmdMove{})
	parser.AddCommand("rm", "Remove an entry.", "", &CmdRemove{})
	parser.AddCommand("diff", "Compare the content of two files.", "", &CmdDiff{})

	_, err := parser.Parse()
	if err != nil {
		if err, ok := err.(*flags.Error); ok {
			if err.Type == flags.ErrHelp {
				os.Exit(0)
			}

			parser.WriteHelp(os.Stdout)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "ERROR: %s", err)
		os.Exit(1)
	}
}
