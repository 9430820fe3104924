package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/mzalewska/spellkeep/dictionary"
)

// newCheckCmd builds "dictcheck check [--verbose] <dictfile>": it reads
// a text stream from stdin, echoes it to stdout with every misspelled
// word prefixed by '#', and with --verbose writes a "line,col word:
// hints" diagnostic to stderr for each one, matching process_input and
// process_word in the original dict-check.c.
func newCheckCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "check <dictfile>",
		Short: "Mark misspelled words in stdin with '#' and write the result to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			d, err := dictionary.Load(bufio.NewReader(f))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return runCheck(d, verbose, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a diagnostic hint line to stderr for every misspelled word")
	return cmd
}

// runCheck streams in to out rune by rune, buffering contiguous letter
// runs into words. Each word is looked up lowercase; a miss is echoed
// with a leading '#' and, if verbose, reported on errOut with its
// 1-based line and column and the dictionary's hints.
func runCheck(d *dictionary.Dict, verbose bool, in io.Reader, out, errOut io.Writer) error {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)

	var word []rune
	line, col := 1, 0

	flush := func() error {
		if len(word) == 0 {
			return nil
		}
		lower := make([]rune, len(word))
		for i, ch := range word {
			lower[i] = unicode.ToLower(ch)
		}
		if d.Find(lower) {
			_, err := w.WriteString(string(word))
			word = word[:0]
			return err
		}
		if verbose {
			hints := d.Hints(lower)
			fmt.Fprintf(errOut, "%d,%d %s: %s\n", line, col-len(word)+1, string(word), strings.Join(hints, " "))
		}
		if _, err := w.WriteRune('#'); err != nil {
			return err
		}
		_, err := w.WriteString(string(word))
		word = word[:0]
		return err
	}

	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if unicode.IsLetter(ch) {
			word = append(word, ch)
			col++
			continue
		}
		if err := flush(); err != nil {
			return err
		}
		if _, err := w.WriteRune(ch); err != nil {
			return err
		}
		if ch == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	if err := flush(); err != nil {
		return err
	}
	return w.Flush()
}
