// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jlink evaluates link paths against JSON or YAML tree values.
//
// Usage:
//
//	jlink get -f config.json 'servers[0]->host'
//	cat data.json | jlink get -x 'test/path[0]/to'
//	jlink demo
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jlink"
	"github.com/creachadair/jlink/treeio"
	"github.com/spf13/cobra"
)

var (
	treeFile string
	useSlash bool
)

var rootCmd = &cobra.Command{
	Use:           "jlink",
	Short:         "Evaluate link paths against JSON or YAML trees",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var getCmd = &cobra.Command{
	Use:   "get PATH...",
	Short: "Evaluate link paths against an input tree",
	Long: `Evaluate link paths against an input tree.

The tree is read from the file named by --file, or from stdin. Each PATH is
evaluated in order and its result printed as JSON, one per line. A path that
does not resolve prints a diagnostic to stderr and sets a nonzero exit
status.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in linkset against the sample trees",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	getCmd.Flags().StringVarP(&treeFile, "file", "f", "", "Input file (default stdin, JSON)")
	getCmd.Flags().BoolVarP(&useSlash, "xpath", "x", false, `Use the slash-separated ("/") dialect`)
	rootCmd.AddCommand(getCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	tree, err := loadTree()
	if err != nil {
		return err
	}

	var nfail int
	for _, path := range args {
		var v any
		var err error
		if useSlash {
			v, err = jlink.LookupSlash(tree, path, nil)
		} else {
			v, err = jlink.Lookup(tree, path, nil)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			nfail++
			continue
		}
		out, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding result for %q: %w", path, err)
		}
		fmt.Println(string(out))
	}
	if nfail > 0 {
		return fmt.Errorf("%d of %d paths did not resolve", nfail, len(args))
	}
	return nil
}

func loadTree() (any, error) {
	if treeFile != "" {
		return treeio.ParseFile(treeFile)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	} else if len(data) == 0 {
		return nil, errors.New("no input tree (use --file or pipe to stdin)")
	}
	return treeio.ParseJSON(data)
}
