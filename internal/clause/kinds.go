// Package clause stores the accumulated clause state of a relation.
package clause

// Kind identifies one category of query state.
type Kind int

const (
	// Multi-valued kinds accumulate an ordered list of entries.
	KindSelect Kind = iota
	KindJoins
	KindWhere
	KindGroup
	KindHaving
	KindOrder
	KindIncludes
	KindExtending

	// Single-valued kinds hold at most one value; later writes overwrite.
	KindLimit
	KindOffset
	KindLock
	KindDistinct
	KindFrom
)

// kindNames is the canonical spelling for each kind, used by String,
// ParseKind, and the CLI's --only/--except flags.
var kindNames = map[Kind]string{
	KindSelect:    "select",
	KindJoins:     "joins",
	KindWhere:     "where",
	KindGroup:     "group",
	KindHaving:    "having",
	KindOrder:     "order",
	KindIncludes:  "includes",
	KindExtending: "extending",
	KindLimit:     "limit",
	KindOffset:    "offset",
	KindLock:      "lock",
	KindDistinct:  "distinct",
	KindFrom:      "from",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Multi reports whether the kind accumulates an ordered entry list.
// The partition is fixed: every kind is exactly one of multi or single.
func (k Kind) Multi() bool {
	return k >= KindSelect && k <= KindExtending
}

// MultiKinds returns all multi-valued kinds in declaration order.
func MultiKinds() []Kind {
	return []Kind{KindSelect, KindJoins, KindWhere, KindGroup, KindHaving, KindOrder, KindIncludes, KindExtending}
}

// SingleKinds returns all single-valued kinds in declaration order.
func SingleKinds() []Kind {
	return []Kind{KindLimit, KindOffset, KindLock, KindDistinct, KindFrom}
}

// Kinds returns the full kind vocabulary, multi kinds first.
func Kinds() []Kind {
	return append(MultiKinds(), SingleKinds()...)
}

// ParseKind resolves a kind name. The second result is false for names
// outside the vocabulary.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// ParseKinds resolves a list of kind names, silently dropping unknown
// names. Filtering is permissive: misspelled kinds in an --only/--except
// list are ignored rather than rejected.
func ParseKinds(names []string) []Kind {
	var kinds []Kind
	for _, name := range names {
		if k, ok := kindsByName[name]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
