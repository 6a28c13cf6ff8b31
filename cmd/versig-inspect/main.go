// Command versig-inspect dumps and diffs the schema embedded in a
// versig stream, without needing the original in-memory type linked
// in: dump prints a stream's schema tree, diff renders a unified diff
// between two streams' schemas.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/versig/versig/codec"
	"github.com/versig/versig/schema"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("versig-inspect failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "versig-inspect",
		Short: "Inspect schemas embedded in versig streams",
	}
	root.AddCommand(newDumpCmd(), newDiffCmd())
	return root
}

func newDumpCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the schema embedded in a versig stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := readStreamSchema(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(schema.ToJSONSchema(s))
			}
			fmt.Fprintln(cmd.OutOrStdout(), schema.Dump(s))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "render as JSON Schema instead of a raw dump")
	return cmd
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <fileA> <fileB>",
		Short: "Show a unified diff between two streams' embedded schemas",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := readStreamSchema(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			b, _, err := readStreamSchema(args[1])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[1], err)
			}

			msg, err := schema.Diff(a, b, ".")
			if err != nil {
				logrus.WithError(err).Debug("schema contains an undefined node")
			}
			if msg == "" && err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "schemas are structurally identical")
				return nil
			}
			if msg != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "first mismatch:", msg)
			}

			diff := difflib.UnifiedDiff{
				A:        difflib.SplitLines(schema.Dump(a)),
				B:        difflib.SplitLines(schema.Dump(b)),
				FromFile: args[0],
				ToFile:   args[1],
				Context:  3,
			}
			text, derr := difflib.GetUnifiedDiffString(diff)
			if derr != nil {
				return derr
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	return cmd
}

// readStreamSchema reads the version and embedded schema off the
// front of a versig stream written by Save (which always embeds the
// schema), without decoding the payload that follows.
func readStreamSchema(path string) (schema.Schema, uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return schema.Schema{}, 0, err
	}
	defer f.Close()

	r := codec.NewReader(f)
	version, err := r.ReadU32()
	if err != nil {
		return schema.Schema{}, 0, err
	}
	s, err := schema.Read(r)
	if err != nil {
		return schema.Schema{}, 0, err
	}
	return s, version, nil
}
