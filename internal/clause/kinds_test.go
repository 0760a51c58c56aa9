package clause

import "testing"

func TestKindPartition(t *testing.T) {
	seen := make(map[Kind]bool)
	for _, k := range MultiKinds() {
		if !k.Multi() {
			t.Errorf("MultiKinds() includes %v but Multi() is false", k)
		}
		seen[k] = true
	}
	for _, k := range SingleKinds() {
		if k.Multi() {
			t.Errorf("SingleKinds() includes %v but Multi() is true", k)
		}
		if seen[k] {
			t.Errorf("kind %v appears in both partitions", k)
		}
		seen[k] = true
	}
	if len(seen) != len(Kinds()) {
		t.Errorf("partitions cover %d kinds, vocabulary has %d", len(seen), len(Kinds()))
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		name := k.String()
		if name == "unknown" {
			t.Fatalf("kind %d has no name", int(k))
		}
		parsed, ok := ParseKind(name)
		if !ok || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, true", name, parsed, ok, k)
		}
	}
}

func TestParseKindsDropsUnknown(t *testing.T) {
	kinds := ParseKinds([]string{"where", "bogus", "order", ""})
	want := []Kind{KindWhere, KindOrder}
	if len(kinds) != len(want) {
		t.Fatalf("ParseKinds returned %v, want %v", kinds, want)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("ParseKinds[%d] = %v, want %v", i, kinds[i], k)
		}
	}
}

func TestParseKindsEmpty(t *testing.T) {
	if kinds := ParseKinds([]string{"nope"}); kinds != nil {
		t.Errorf("ParseKinds of all-unknown names = %v, want nil", kinds)
	}
}
