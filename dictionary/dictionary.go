// Package dictionary is the public façade spec.md §4.6 describes: it
// composes the ordered symbol table, trie, word list, and rule set
// into the single Dict value a caller constructs, mutates, queries, and
// tears down.
//
// Grounded on the original dictionary.c's public surface
// (dictionary_new/done/insert/delete/find/save/load/hints/
// rule_add/rule_clear), reworked into idiomatic Go: boolean returns for
// the expected NotFound/AlreadyPresent outcomes, wrapped sentinel
// errors from internal/spellerr for everything else, and an
// io.Writer/io.RuneScanner pair standing in for the original's FILE*.
package dictionary

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/mzalewska/spellkeep/internal/collate"
	"github.com/mzalewska/spellkeep/internal/dictlog"
	"github.com/mzalewska/spellkeep/internal/hint"
	"github.com/mzalewska/spellkeep/internal/rules"
	"github.com/mzalewska/spellkeep/internal/symtab"
	"github.com/mzalewska/spellkeep/internal/trie"
	"github.com/mzalewska/spellkeep/internal/wordlist"
)

// MaxHints is the fixed cap on the number of hints Hints ever returns,
// DICTIONARY_MAX_HINTS in the original.
const MaxHints = 20

// DefaultCostMax is the hint search depth a freshly constructed Dict
// uses until CostMaxSet changes it.
const DefaultCostMax = 6

// Dict owns one trie, one alphabet, one rule set, and the cost bound
// that governs hint search depth. The zero value is not usable; build
// one with New.
type Dict struct {
	order    *collate.Order
	tr       *trie.Trie
	alphabet *symtab.Table[struct{}]
	rules    *rules.Set
	costMax  int
	log      *slog.Logger
}

// Option configures a Dict at construction time.
type Option func(*Dict)

// WithLocale selects the collation used to order a dictionary's trie
// children, alphabet, and hint output. The default is language.Und,
// the root collation.
func WithLocale(tag language.Tag) Option {
	return func(d *Dict) { d.order = collate.New(tag) }
}

// WithLogger attaches a logger for the dictionary's debug tracing. The
// default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dict) { d.log = l }
}

// New constructs an empty dictionary: empty alphabet, empty rule set,
// cost_max = DefaultCostMax.
func New(opts ...Option) *Dict {
	d := &Dict{
		order:   collate.New(language.Und),
		rules:   rules.New(),
		costMax: DefaultCostMax,
		log:     dictlog.Discard,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.alphabet = symtab.New[struct{}](d.order)
	d.tr = trie.New(d.order, d.alphabet)
	return d
}

// Insert adds word, reporting true if it was newly inserted and false
// if it was already present (spec.md's AlreadyPresent outcome,
// surfaced as a boolean rather than an error).
func (d *Dict) Insert(word []rune) bool {
	inserted := d.tr.Insert(word)
	d.log.Debug("insert", "word", string(word), "inserted", inserted)
	return inserted
}

// Delete removes word, reporting true if it was present and removed,
// false if it was absent (spec.md's NotFound outcome).
func (d *Dict) Delete(word []rune) bool {
	if !d.tr.Find(word) {
		return false
	}
	d.tr.Delete(word)
	d.log.Debug("delete", "word", string(word))
	return true
}

// Find reports whether word is a member of the dictionary.
func (d *Dict) Find(word []rune) bool {
	return d.tr.Find(word)
}

// Save writes the dictionary to w in the grammar spec.md §6 specifies.
func (d *Dict) Save(w io.Writer) error {
	return trie.Save(d.tr, d.alphabet, w)
}

// Load reads a dictionary previously written by Save. On any malformed
// byte sequence it returns spellerr.ErrMalformedDictFile and a nil
// Dict; the partially built trie is discarded.
func Load(r io.RuneScanner, opts ...Option) (*Dict, error) {
	d := &Dict{
		order:   collate.New(language.Und),
		rules:   rules.New(),
		costMax: DefaultCostMax,
		log:     dictlog.Discard,
	}
	for _, opt := range opts {
		opt(d)
	}
	tr, alphabet, err := trie.Load(d.order, r)
	if err != nil {
		return nil, fmt.Errorf("dictionary: load: %w", err)
	}
	d.tr = tr
	d.alphabet = alphabet
	return d, nil
}

// Hints runs the layered, cost-bounded rule search for word and
// returns at most MaxHints dictionary members reachable from it,
// sorted in locale collation order with no duplicates.
func (d *Dict) Hints(word []rune) []string {
	out := wordlist.New(d.order)
	hint.Search(word, d.tr.Root, d.rules, d.costMax, MaxHints, out)
	return out.Words()
}

// CostMaxSet sets the hint search's cost bound and returns the
// previous value.
func (d *Dict) CostMaxSet(newCostMax int) int {
	old := d.costMax
	d.costMax = newCostMax
	return old
}

// RuleAdd registers a rewrite rule. If bidirectional is true, the
// mirrored rule (right, left, cost, flag) is also added when it is
// itself well-formed. It returns spellerr.ErrMalformedRule, wrapped,
// if the forward rule violates well-formedness.
func (d *Dict) RuleAdd(left, right []rune, bidirectional bool, cost int, flag rules.Flag) error {
	if bidirectional {
		_, _, err := d.rules.AddBidirectional(left, right, cost, flag)
		return err
	}
	_, err := d.rules.Add(left, right, cost, flag)
	return err
}

// RuleClear removes every rewrite rule.
func (d *Dict) RuleClear() {
	d.rules.Clear()
}
