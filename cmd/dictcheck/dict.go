package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mzalewska/spellkeep/dictionary"
	"github.com/mzalewska/spellkeep/internal/registry"
)

// newDictCmd builds "dictcheck dict", the named-dictionary management
// surface dropped by the distillation but present in the original's
// dictionary_lang_list / dictionary_save_lang / dictionary_load_lang.
func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage the registry of named dictionaries",
	}
	cmd.AddCommand(newDictListCmd())
	cmd.AddCommand(newDictSaveCmd())
	cmd.AddCommand(newDictLoadCmd())
	return cmd
}

func openRegistry() (*registry.Registry, error) {
	return registry.Open(registry.DefaultListPath)
}

func newDictListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered dictionary name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRegistry()
			if err != nil {
				return err
			}
			for _, name := range r.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newDictSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <dictfile>",
		Short: "Register dictfile under name, copying it into the registry's directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, dictfile := args[0], args[1]
			f, err := os.Open(dictfile)
			if err != nil {
				return err
			}
			defer f.Close()
			d, err := dictionary.Load(bufio.NewReader(f))
			if err != nil {
				return fmt.Errorf("%s: %w", dictfile, err)
			}

			r, err := openRegistry()
			if err != nil {
				return err
			}
			path := r.PathFor(name)
			out, err := os.Create(path)
			if err != nil {
				return err
			}
			defer out.Close()
			if err := d.Save(out); err != nil {
				return err
			}
			return r.Register(name, path)
		},
	}
}

func newDictLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <name>",
		Short: "Print the filesystem path registered under name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRegistry()
			if err != nil {
				return err
			}
			path, err := r.Path(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
