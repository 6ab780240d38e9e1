package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/pcomb/ebnf/parse"
	"github.com/dhamidi/pcomb/format"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfCheckCmd())
	cmd.AddCommand(newEbnfParseCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			grammar, err := ebnf.Parse(filename, f)
			if err != nil {
				printErrors(cmd, err)
				return err
			}

			if startProduction == "" {
				return nil
			}

			// Compile also verifies and rejects left recursion.
			if _, err := parse.Compile(grammar, startProduction); err != nil {
				printErrors(cmd, err)
				return err
			}
			log.Infof("%s: %d productions, start %q", filename, len(grammar), startProduction)

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newEbnfParseCmd() *cobra.Command {
	var startProduction string
	var outputFormat string
	var skipSpace bool

	cmd := &cobra.Command{
		Use:           "parse <grammar> [file]",
		Short:         "Parse a file with a grammar and dump the syntax tree",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			g, err := parse.LoadGrammar(args[0])
			if err != nil {
				return err
			}

			var opts []parse.Option
			if skipSpace {
				opts = append(opts, parse.WithSkipSpace())
			}
			p, err := parse.Compile(g, startProduction, opts...)
			if err != nil {
				return fmt.Errorf("compile %s: %w", args[0], err)
			}

			filename, src, err := readSource(cmd, args[1:])
			if err != nil {
				return err
			}

			node, err := p.Parse(string(src))
			if err != nil {
				err = fmt.Errorf("parse %s: %w", filename, err)
				printErrors(cmd, err)
				return err
			}

			if err := enc.EncodeNode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().BoolVar(&skipSpace, "skip-space", false, "skip whitespace between tokens of non-lexical productions")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// printErrors prints each error of an error list on its own line. The list
// may be wrapped.
func printErrors(cmd *cobra.Command, err error) {
	out := cmd.ErrOrStderr()
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() != reflect.Slice {
			continue
		}
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(out, v.Index(i).Interface())
		}
		return
	}
	fmt.Fprintln(out, err)
}
