// Command dictcheck is the spell-checking collaborator spec.md
// describes: it reads a saved dictionary file and either checks a text
// stream against it or manages a directory of named dictionaries.
//
// Rebuilds the dict-check.c collaborator found in
// original_source/src/dict-check, reworked as a Cobra command the way
// the pack's vippsas/sqlcode and eykd/prosemark-go build their own CLI
// surfaces.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dictcheck",
		Short:         "Check spelling against a spellkeep dictionary",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newDictCmd())
	return cmd
}
