package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/sarthakjha889/go-prefix-index/internal/command"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{Reader: os.Stdin, Writer: os.Stdout, ErrorWriter: os.Stderr}

	c := cli.NewCLI("prefixdict", version)
	c.Args = args
	c.Commands = command.Commands(ui)
	c.HelpWriter = os.Stdout

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err)
		return 1
	}
	return exitCode
}
