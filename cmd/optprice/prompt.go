package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/joshi-prasad/optprice"
)

const kKindPrompt = "Would you like to price a call or put option? "

// resolveKind parses the configured kind, asking on stdin when none is set.
func resolveKind(configured string, stdin io.Reader, stdout io.Writer) (optprice.OptionKind, error) {
	if configured != "" {
		return optprice.ParseOptionKind(configured)
	}

	fmt.Fprint(stdout, kKindPrompt)
	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, errors.New("no option kind given on stdin")
	}
	fmt.Fprintln(stdout)
	return optprice.ParseOptionKind(scanner.Text())
}
