package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/format"
	"github.com/dhamidi/pcomb/grammar"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an arithmetic program and dump the result",
		Long: `Parse an arithmetic program read from a file, or from standard input when
the file is omitted or "-", and print its syntax tree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			filename, src, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			code, err := grammar.ParseProgram(string(src))
			if err != nil {
				return fmt.Errorf("parse %s: %w", filename, err)
			}
			log.Debugf("parsed %d statements from %s", len(code.Expressions), filename)

			if err := enc.EncodeProgram(code); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")

	return cmd
}

// readSource reads the file named by args[0], or standard input.
func readSource(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read file: %w", err)
	}
	return args[0], data, nil
}
