package main

import (
	"fmt"
	"os"

	"github.com/teranos/nldates/cmd/nldates/commands"
	"github.com/teranos/nldates/errors"
	"github.com/teranos/nldates/logger"
	"github.com/teranos/nldates/temporal"
)

func main() {
	err := commands.NewRootCmd().Execute()
	logger.Cleanup()
	if err == nil {
		return
	}

	var perr *temporal.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintln(os.Stderr, perr.FormatError(temporal.ErrorContextTerminal))
	} else {
		fmt.Fprintln(os.Stderr, err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
	}
	os.Exit(1)
}
