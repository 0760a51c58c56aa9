package clause

import "fmt"

// KindMismatchError reports a kind queried through the wrong-arity
// accessor. This is a programming-contract violation, not a runtime
// condition: the accessors panic with it rather than returning it.
type KindMismatchError struct {
	Kind Kind
	Want string // "multi" or "single"
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("clause kind %q is not %s-valued", e.Kind, e.Want)
}

func mustMulti(k Kind) {
	if !k.Multi() {
		panic(&KindMismatchError{Kind: k, Want: "multi"})
	}
}

func mustSingle(k Kind) {
	if k.Multi() {
		panic(&KindMismatchError{Kind: k, Want: "single"})
	}
}
