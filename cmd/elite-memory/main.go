package main

import (
	"os"
	"strings"

	"github.com/felixgeelhaar/elite-memory/cmd/elite-memory/cli"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	if err := cli.Execute(os.Args[1:]); err != nil {
		// Single-line error on stderr, no usage dump.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = os.Stderr.WriteString(msg + "\n")
		code := 1
		if ec, ok := err.(exitCoder); ok {
			if c := ec.ExitCode(); c != 0 {
				code = c
			}
		}
		os.Exit(code)
	}
}
