package mutate

import (
	"math/rand/v2"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/config"
)

// Qualifier replaces every entry of decl's Quals with a different member
// of the qualifier pool, independently per slot, and mirrors the result
// into the nested TypeDecl (or Typename) so the unparser sees a
// consistent tree. Grounded on OtherMutator.py's qualifier_mutator, which
// writes through to node['type']['type']['quals'].
func Qualifier(rng *rand.Rand, quals *[]string, mirror *[]string, lang *config.LanguageTable) bool {
	if len(*quals) == 0 {
		return false
	}
	next := make([]string, len(*quals))
	for i, q := range *quals {
		choices := otherMembers(lang.Qualifiers, q)
		if len(choices) == 0 {
			return false
		}
		next[i] = choices[rng.IntN(len(choices))]
	}
	*quals = next
	if mirror != nil {
		mirrored := make([]string, len(next))
		copy(mirrored, next)
		*mirror = mirrored
	}
	return true
}

// QualifierOnDecl applies Qualifier to a Decl, mirroring into its nested
// TypeDecl's Quals slot when one is present.
func QualifierOnDecl(rng *rand.Rand, d *cast.Decl, lang *config.LanguageTable) bool {
	if td, ok := d.Type.(*cast.TypeDecl); ok {
		return Qualifier(rng, &d.Quals, &td.Quals, lang)
	}
	return Qualifier(rng, &d.Quals, nil, lang)
}

// QualifierOnTypename applies Qualifier to a Typename, mirroring into its
// nested TypeDecl's Quals slot when one is present.
func QualifierOnTypename(rng *rand.Rand, t *cast.Typename, lang *config.LanguageTable) bool {
	if td, ok := t.Type.(*cast.TypeDecl); ok {
		return Qualifier(rng, &t.Quals, &td.Quals, lang)
	}
	return Qualifier(rng, &t.Quals, nil, lang)
}

// IdentifierType replaces an IdentifierType's first name with a different
// member of its own size class (Types2 or Types3). Returns false if the
// current name belongs to neither class (OtherMutator.py's
// identifier_type_mutator: select_from stays empty and nothing happens).
func IdentifierType(rng *rand.Rand, n *cast.IdentifierType, lang *config.LanguageTable) bool {
	if len(n.Names) == 0 {
		return false
	}
	var pool []string
	switch {
	case contains(lang.Types2, n.Names[0]):
		pool = lang.Types2
	case contains(lang.Types3, n.Names[0]):
		pool = lang.Types3
	default:
		return false
	}
	choices := otherMembers(pool, n.Names[0])
	if len(choices) == 0 {
		return false
	}
	n.Names[0] = choices[rng.IntN(len(choices))]
	return true
}

// LoopControlFlow returns a new Continue for a Break and a new Break for a
// Continue (any other node is returned as is). Grounded on
// OtherMutator.py's loop_cf_mutator; n itself is not modified, so callers
// must replace the node in its parent slot with the value this function
// returns.
func LoopControlFlow(n cast.Node) cast.Node {
	switch n.(type) {
	case *cast.Break:
		return &cast.Continue{}
	case *cast.Continue:
		return &cast.Break{}
	default:
		return n
	}
}

// Goto rewrites a Goto's target label to a different member of the
// program's label set. Grounded on OtherMutator.py's goto_mutator; the
// classifier already guarantees at least two distinct labels exist before
// a Goto is offered to this mutator (spec.md §4.2).
func Goto(rng *rand.Rand, n *cast.Goto, labels map[string]bool) bool {
	choices := make([]string, 0, len(labels))
	for l := range labels {
		if l != n.Name {
			choices = append(choices, l)
		}
	}
	if len(choices) == 0 {
		return false
	}
	n.Name = choices[rng.IntN(len(choices))]
	return true
}
