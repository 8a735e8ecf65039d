package search

import "testing"

func TestNewMatcherEmptyTerm(t *testing.T) {
	if m := NewMatcher(""); m != nil {
		t.Error("empty term should yield a nil matcher")
	}
}

func TestNilMatcherIsSafe(t *testing.T) {
	var m *Matcher
	if m.Contains("anything") {
		t.Error("nil matcher should match nothing")
	}
	if got := m.Find("anything"); got != nil {
		t.Errorf("nil matcher Find = %v, want nil", got)
	}
	if m.Term() != "" {
		t.Errorf("nil matcher Term = %q", m.Term())
	}
}

func TestContainsCaseInsensitive(t *testing.T) {
	m := NewMatcher("asha")
	for _, text := range []string{"Asha Rao", "ASHA", "prasha nth"} {
		if !m.Contains(text) {
			t.Errorf("Contains(%q) = false, want true", text)
		}
	}
	if m.Contains("Arjun") {
		t.Error("Contains should be false for non-matching text")
	}
}

func TestMetacharactersMatchLiterally(t *testing.T) {
	m := NewMatcher("a.b*c")
	if !m.Contains("xx a.b*c yy") {
		t.Error("literal metacharacters should match themselves")
	}
	if m.Contains("aXbbbc") {
		t.Error("term must not act as a pattern")
	}
}

func TestFindOffsets(t *testing.T) {
	m := NewMatcher("an")
	got := m.Find("Anand")
	want := []Match{{Offset: 0, Length: 2}, {Offset: 2, Length: 2}}

	if len(got) != len(want) {
		t.Fatalf("Find returned %d matches, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFindNoMatch(t *testing.T) {
	m := NewMatcher("zzz")
	if got := m.Find("Asha"); got != nil {
		t.Errorf("Find = %v, want nil", got)
	}
}
