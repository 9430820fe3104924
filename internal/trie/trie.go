// Package trie implements the prefix tree described by the dictionary
// specification: a tree of wide-character (rune) edges whose nodes carry
// a Root/Interior/Terminal/Visited kind tag, a non-owning parent
// back-reference used for path deletion, and an ordered children table.
//
// This replaces the map[rune]*Node trie the rest of the example corpus
// builds (see Zubayear/ryushin's trie package, which this package is
// adapted from): membership still walks edges one rune at a time, but
// children are now a symtab.Table kept in locale collation order, since
// the dictionary's serialization format and hint search both depend on
// visiting a node's children in that order, not map iteration order.
package trie

import (
	"bufio"
	"fmt"
	"io"
	"unicode"

	"github.com/mzalewska/spellkeep/internal/collate"
	"github.com/mzalewska/spellkeep/internal/spellerr"
	"github.com/mzalewska/spellkeep/internal/stack"
	"github.com/mzalewska/spellkeep/internal/symtab"
)

// Kind tags what a Node represents.
type Kind int

const (
	// Interior marks a node that is not the end of any inserted word.
	Interior Kind = iota
	// Root marks the tree's single entry node. Only Root has a nil parent.
	Root
	// Terminal marks a node at which at least one inserted word ends.
	// A Terminal node may still have children.
	Terminal
	// Visited is a transient marker used only during Save, so a
	// malformed cyclic structure cannot be walked twice.
	Visited
)

func (k Kind) String() string {
	switch k {
	case Root:
		return "Root"
	case Terminal:
		return "Terminal"
	case Visited:
		return "Visited"
	default:
		return "Interior"
	}
}

// Node is one vertex of the trie.
type Node struct {
	Kind     Kind
	Parent   *Node
	Edge     rune // the character labeling the edge from Parent to this node; meaningless on Root
	Children *symtab.Table[*Node]
}

func newNode(kind Kind, parent *Node, edge rune, order *collate.Order) *Node {
	return &Node{
		Kind:     kind,
		Parent:   parent,
		Edge:     edge,
		Children: symtab.New[*Node](order),
	}
}

// Trie is a prefix tree of wide-character words.
type Trie struct {
	order    *collate.Order
	Root     *Node
	alphabet *symtab.Table[struct{}]
}

// New returns an empty trie. alphabet is the dictionary's alphabet
// table; every edge character created by Insert is offered to it.
func New(order *collate.Order, alphabet *symtab.Table[struct{}]) *Trie {
	return &Trie{
		order:    order,
		Root:     newNode(Root, nil, 0, order),
		alphabet: alphabet,
	}
}

// Find reports whether word is present: every character has a matching
// edge and the final node is Terminal.
func (t *Trie) Find(word []rune) bool {
	node := t.walk(word)
	return node != nil && node.Kind == Terminal
}

// walk follows word from the root and returns the node reached, or nil
// if any edge is missing.
func (t *Trie) walk(word []rune) *Node {
	node := t.Root
	for _, ch := range word {
		child, ok := node.Children.Lookup(ch)
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// Insert adds word to the trie. It reports true if word was newly
// inserted, false if it was already present. Every newly created edge
// character is offered to the trie's alphabet.
func (t *Trie) Insert(word []rune) bool {
	node := t.Root
	i := 0
	for ; i < len(word); i++ {
		child, ok := node.Children.Lookup(word[i])
		if !ok {
			break
		}
		node = child
	}
	if i == len(word) {
		if node.Kind == Terminal {
			return false
		}
		node.Kind = Terminal
		return true
	}
	for ; i < len(word); i++ {
		child := newNode(Interior, node, word[i], t.order)
		node.Children.InsertSorted(word[i], child)
		if t.alphabet != nil {
			t.alphabet.InsertSorted(word[i], struct{}{})
		}
		node = child
	}
	node.Kind = Terminal
	return true
}

// Delete removes word from the trie. The caller must have already
// confirmed Find(word) == true; Delete itself re-walks the word, demotes
// its terminal node to Interior if it still has children, and otherwise
// deletes it and prunes any ancestor that becomes a childless Interior,
// stopping at Root or at an ancestor that is itself Terminal.
func (t *Trie) Delete(word []rune) {
	type step struct {
		node *Node
		ch   rune
	}
	path := stack.New[step]()
	node := t.Root
	for _, ch := range word {
		child, ok := node.Children.Lookup(ch)
		if !ok {
			return // precondition violated; nothing to do
		}
		path.Push(step{node: node, ch: ch})
		node = child
	}
	if node.Kind != Terminal {
		return
	}
	if node.Children.Len() > 0 {
		node.Kind = Interior
		return
	}
	for {
		s, ok := path.Pop()
		if !ok {
			break
		}
		parent := s.node
		parent.Children.Remove(s.ch)
		if parent.Children.Len() > 0 || parent.Kind == Terminal || parent.Kind == Root {
			break
		}
	}
}

// Save writes the trie in the DFS grammar specified by the dictionary's
// serialization format: the alphabet line, then "0" for the root, then
// for each child in collation order its edge character, an optional
// terminal digit, its subtree, and a '#' terminator.
//
// Save marks every visited node Visited so a malformed cyclic structure
// (which a well-formed trie never has, since it is a tree) cannot be
// walked twice; nodes are restored to their prior kind as the DFS
// unwinds.
func Save(t *Trie, alphabet *symtab.Table[struct{}], w io.Writer) error {
	bw := bufio.NewWriter(w)
	alphabet.All(func(ch rune, _ struct{}) bool {
		if _, err := bw.WriteRune(ch); err != nil {
			return false
		}
		return true
	})
	if _, err := bw.WriteString("\n0"); err != nil {
		return fmt.Errorf("trie: write header: %w", spellerr.ErrIO)
	}
	if err := saveNode(t.Root, bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("trie: flush: %w: %v", spellerr.ErrIO, err)
	}
	return nil
}

func saveNode(node *Node, bw *bufio.Writer) error {
	prior := node.Kind
	node.Kind = Visited
	var writeErr error
	node.Children.All(func(ch rune, child *Node) bool {
		if _, err := bw.WriteRune(ch); err != nil {
			writeErr = fmt.Errorf("trie: write edge: %w", spellerr.ErrIO)
			return false
		}
		if child.Kind == Terminal {
			if _, err := bw.WriteRune('1'); err != nil {
				writeErr = fmt.Errorf("trie: write terminal marker: %w", spellerr.ErrIO)
				return false
			}
		}
		if child.Kind != Visited {
			if err := saveNode(child, bw); err != nil {
				writeErr = err
				return false
			}
		}
		return true
	})
	if writeErr != nil {
		return writeErr
	}
	if _, err := bw.WriteRune('#'); err != nil {
		return fmt.Errorf("trie: write terminator: %w", spellerr.ErrIO)
	}
	node.Kind = prior
	return nil
}

// Load reverses exactly the grammar Save produces, reading from r. It
// returns a fully built Trie and the alphabet recovered from the header
// line. On any malformed byte sequence it returns
// spellerr.ErrMalformedDictFile and a nil trie.
func Load(order *collate.Order, r io.RuneScanner) (*Trie, *symtab.Table[struct{}], error) {
	alphabet := symtab.New[struct{}](order)
	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return nil, nil, fmt.Errorf("trie: read alphabet: %w", spellerr.ErrMalformedDictFile)
		}
		if ch == '\n' {
			break
		}
		alphabet.Append(ch, struct{}{})
	}
	header, _, err := r.ReadRune()
	if err != nil {
		return nil, nil, fmt.Errorf("trie: read header: %w", spellerr.ErrMalformedDictFile)
	}
	if header != '0' {
		return nil, nil, fmt.Errorf("trie: expected root marker: %w", spellerr.ErrMalformedDictFile)
	}
	t := &Trie{order: order, Root: newNode(Root, nil, 0, order), alphabet: alphabet}
	if err := loadNode(t.Root, order, r); err != nil {
		return nil, nil, err
	}
	return t, alphabet, nil
}

func loadNode(node *Node, order *collate.Order, r io.RuneScanner) error {
	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			return nil // EOF closes any open frame, per the load grammar
		}
		if err != nil {
			return fmt.Errorf("trie: read edge: %w", spellerr.ErrMalformedDictFile)
		}
		if ch == '#' {
			return nil
		}
		if unicode.IsDigit(ch) {
			return fmt.Errorf("trie: unexpected digit %q where an edge or terminator was expected: %w", ch, spellerr.ErrMalformedDictFile)
		}
		kind := Interior
		next, _, err := r.ReadRune()
		switch {
		case err == io.EOF:
			// word ends exactly at EOF with no terminal marker: malformed,
			// but tolerated as an Interior leaf per "EOF closes any open frame".
			child := newNode(kind, node, ch, order)
			node.Children.Append(ch, child)
			return nil
		case err != nil:
			return fmt.Errorf("trie: read terminal marker: %w", spellerr.ErrMalformedDictFile)
		case next == '1':
			kind = Terminal
		default:
			if err := r.UnreadRune(); err != nil {
				return fmt.Errorf("trie: unread rune: %w", spellerr.ErrMalformedDictFile)
			}
		}
		child := newNode(kind, node, ch, order)
		node.Children.Append(ch, child)
		if err := loadNode(child, order, r); err != nil {
			return err
		}
	}
}
