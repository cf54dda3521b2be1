package main

import (
	"fmt"
	"io"
	"os"

	"github.com/seuros/gopher-shapes/src/color"
	"github.com/seuros/gopher-shapes/src/shapes"
)

func lintCommand(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return usageErrorf(2, "Usage: shapes lint <file|->")
	}

	filename := args[0]
	text, err := readInput(filename)
	if err != nil {
		return err
	}

	decoded, err := shapes.Decode(text)
	if err != nil {
		return usageErrorf(1, "Syntax error in %s: %v", filename, err)
	}

	fmt.Fprintf(stdout, "%s: OK (%d shapes)\n", filename, len(decoded))
	return nil
}

func fmtCommand(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return usageErrorf(2, "Usage: shapes fmt <file|->")
	}

	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	decoded, err := shapes.Decode(text)
	if err != nil {
		return usageErrorf(1, "Syntax error in %s: %v", args[0], err)
	}

	encoded, err := shapes.Encode(decoded)
	if err != nil {
		return usageErrorf(1, "Cannot format %s: %v", args[0], err)
	}

	_, err = io.WriteString(stdout, encoded)
	return err
}

func colorCommand(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return usageErrorf(2, "Usage: shapes color <#rrggbb>...")
	}

	for _, arg := range args {
		v, err := color.HexToColor(arg)
		if err != nil {
			return usageErrorf(1, "%v", err)
		}
		fmt.Fprintf(stdout, "%s\t%d\n", arg, v)
	}
	return nil
}

func readInput(filename string) (string, error) {
	var (
		content []byte
		err     error
	)
	if filename == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(filename)
	}
	if err != nil {
		return "", err
	}
	return string(content), nil
}
