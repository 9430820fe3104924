// Package registry implements the named-dictionary directory the
// original C core kept under its configuration path
// (dictionary_lang_list / dictionary_load_lang / dictionary_save_lang /
// add_dict_to_list / is_in_list in dictionary.c): a mapping from a
// short name — historically a language tag like "en" or "pl" — to the
// filesystem path of a saved dictionary file, so a caller can list,
// load, and save dictionaries by name instead of juggling paths
// directly.
//
// It is backed by internal/treemap so Names always comes back sorted,
// matching the ordering guarantees the rest of this module gives for
// every other iteration surface. Registrations are additionally
// persisted to a flat, newline-delimited list file under the
// registry's directory — the Go analogue of the original's
// LIST_PATH/dict_list.txt, opened "a+" and appended to by
// add_dict_to_list — so names registered in one process are visible to
// the next.
package registry

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mzalewska/spellkeep/internal/spellerr"
	"github.com/mzalewska/spellkeep/internal/treemap"
)

// listFile is the name of the flat registration list within a
// Registry's directory, the analogue of the original's dict_list.txt.
const listFile = "dict_list.txt"

// DefaultListPath is the default root Registry entries are persisted
// under, the Go-idiomatic analogue of the original's
// CONF_PATH/dict_list.txt.
var DefaultListPath = filepath.Join(defaultConfigHome(), "spellkeep")

func defaultConfigHome() string {
	if dir, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}

// Registry maps a dictionary name to the file path it was saved under.
type Registry struct {
	dir     string
	entries *treemap.TreeMap[string, string]
}

// Open returns a Registry rooted at dir, creating dir if it does not
// already exist, and loads any names already registered from dir's
// list file.
func Open(dir string) (*Registry, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("registry: create %s: %w", dir, spellerr.ErrIO)
	}
	r := &Registry{dir: dir, entries: treemap.New[string, string]()}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) load() error {
	f, err := os.Open(filepath.Join(r.dir, listFile))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("registry: read list: %w", spellerr.ErrIO)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		name, path, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		r.entries.Put(name, path)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("registry: read list: %w", spellerr.ErrIO)
	}
	return nil
}

// Register records that name maps to path and appends the pair to the
// registry's list file. It reports spellerr.ErrAlreadyPresent if name
// is taken.
func (r *Registry) Register(name, path string) error {
	if r.entries.ContainsKey(name) {
		return fmt.Errorf("registry: register %q: %w", name, spellerr.ErrAlreadyPresent)
	}
	f, err := os.OpenFile(filepath.Join(r.dir, listFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("registry: register %q: %w", name, spellerr.ErrIO)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s\t%s\n", name, path); err != nil {
		return fmt.Errorf("registry: register %q: %w", name, spellerr.ErrIO)
	}
	r.entries.Put(name, path)
	return nil
}

// Path returns the file path registered under name.
func (r *Registry) Path(name string) (string, error) {
	path, ok := r.entries.Get(name)
	if !ok {
		return "", fmt.Errorf("registry: %q: %w", name, spellerr.ErrNotFound)
	}
	return path, nil
}

// Names returns every registered name in ascending order.
func (r *Registry) Names() []string {
	return r.entries.Keys()
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return r.entries.Size()
}

// PathFor builds the canonical on-disk path for name under the
// registry's directory, the Go equivalent of the original's
// create_file_path(CONF_PATH, lang).
func (r *Registry) PathFor(name string) string {
	return r.dir + string(os.PathSeparator) + name + ".dict"
}
