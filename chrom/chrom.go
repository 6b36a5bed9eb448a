package chrom

import (
	"sort"
	"strconv"
	"strings"

	"github.com/antzucaro/matchr"
)

// Shortcut tokens.
const (
	Autosomes   = "autosomes"
	AutosomesX  = "autosomesX"
	AutosomesXY = "autosomesXY"
)

// NumAutosomes is the number of human autosomes.
const NumAutosomes = 22

// maxSuggestDistance bounds the edit distance at which Suggest still
// reports a shortcut.
const maxSuggestDistance = 2

var shortcuts map[string][]string

func init() {
	autosomes := make([]string, 0, NumAutosomes)
	for i := 1; i <= NumAutosomes; i++ {
		autosomes = append(autosomes, "chr"+strconv.Itoa(i))
	}
	shortcuts = map[string][]string{
		Autosomes:   autosomes,
		AutosomesX:  append(append([]string(nil), autosomes...), "chrX"),
		AutosomesXY: append(append([]string(nil), autosomes...), "chrX", "chrY"),
	}
}

// Spec names a set of chromosomes: either a single token, which may be a
// shortcut, or an explicit list of names.
type Spec struct {
	token  string
	names  []string
	isList bool
}

// Token returns a Spec for a single name or shortcut token.
func Token(s string) Spec { return Spec{token: s} }

// Names returns a Spec for an explicit list of names. The list is never
// interpreted as shortcuts, even when it holds a single shortcut spelling.
func Names(names ...string) Spec { return Spec{names: names, isList: true} }

// ParseSpec parses a command-line value. A value containing commas is an
// explicit list; anything else is a token.
func ParseSpec(s string) Spec {
	if !strings.Contains(s, ",") {
		return Token(s)
	}
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return Names(names...)
}

// IsList reports whether s is an explicit list.
func (s Spec) IsList() bool { return s.isList }

// String implements fmt.Stringer.
func (s Spec) String() string {
	if s.isList {
		return strings.Join(s.names, ",")
	}
	return s.token
}

// Expand returns the chromosome names denoted by s. A token matching a
// shortcut expands to the shortcut's names. Any other token is returned
// as a one-element list, and an explicit list is returned unchanged. Names
// are not validated.
func Expand(s Spec) []string {
	if s.isList {
		return s.names
	}
	if names, ok := Shortcut(s.token); ok {
		return names
	}
	return []string{s.token}
}

// Shortcut returns a copy of the names for the given shortcut token, or
// false if token is not a shortcut.
func Shortcut(token string) ([]string, bool) {
	names, ok := shortcuts[token]
	if !ok {
		return nil, false
	}
	return append([]string(nil), names...), true
}

// Shortcuts returns the recognized shortcut tokens in sorted order.
func Shortcuts() []string {
	tokens := make([]string, 0, len(shortcuts))
	for token := range shortcuts {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Suggest returns the shortcut closest to token by edit distance, if token
// is not itself a shortcut and the distance is small enough that token is
// likely a misspelling. Ties go to the lexicographically smaller token.
func Suggest(token string) (string, bool) {
	if _, ok := shortcuts[token]; ok {
		return "", false
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, s := range Shortcuts() {
		if d := matchr.Levenshtein(token, s); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, best != ""
}
