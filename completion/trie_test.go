package completion

import "testing"

func TestTopKEmptyBeforeInsert(t *testing.T) {
	idx := NewIndex()
	if got := idx.TopK("a", 5); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestTopKEmptyPrefix(t *testing.T) {
	idx := NewIndex()
	idx.Insert("apple", 5)
	if got := idx.TopK("", 5); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestTopKRanking(t *testing.T) {
	idx := NewIndex()
	idx.Insert("apple", 3)
	idx.Insert("app", 9)
	idx.Insert("application", 5)
	idx.Insert("apply", 1)
	got := idx.TopK("app", 3)
	want := []string{"app", "application", "apple"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTopKTiesFollowTraversalOrder(t *testing.T) {
	// Equal-frequency words are never reordered relative to each other:
	// the DFS visits children in ascending byte order, so ties resolve
	// alphabetically by the byte where the words first diverge.
	idx := NewIndex()
	idx.Insert("bat", 4)
	idx.Insert("bar", 4)
	idx.Insert("baz", 4)
	got := idx.TopK("ba", 3)
	want := []string{"bar", "bat", "baz"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTopKCaseInsensitive(t *testing.T) {
	idx := NewIndex()
	idx.Insert("Apple", 2)
	got := idx.TopK("APP", 1)
	if len(got) != 1 || got[0] != "Apple" {
		t.Errorf("got %v, want [Apple]", got)
	}
}

func TestInsertKeepsHigherFrequency(t *testing.T) {
	idx := NewIndex()
	idx.Insert("cat", 1)
	idx.Insert("cat", 9)
	idx.Insert("cat", 3)
	got := idx.TopK("cat", 1)
	if len(got) != 1 || got[0] != "cat" {
		t.Fatalf("got %v", got)
	}
	idx.Insert("catnip", 100)
	got = idx.TopK("cat", 1)
	if got[0] != "catnip" {
		t.Errorf("got %v, want catnip first", got)
	}
}

func TestReset(t *testing.T) {
	idx := NewIndex()
	idx.Insert("hello", 5)
	idx.Reset()
	if got := idx.TopK("hello", 5); got != nil {
		t.Errorf("got %v, want nil after reset", got)
	}
}

func TestTopKNoMatch(t *testing.T) {
	idx := NewIndex()
	idx.Insert("hello", 5)
	if got := idx.TopK("zz", 5); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestTopKMoreThanAvailable(t *testing.T) {
	idx := NewIndex()
	idx.Insert("a", 1)
	idx.Insert("ab", 2)
	got := idx.TopK("a", 10)
	if len(got) != 2 {
		t.Errorf("got %v, want 2 results", got)
	}
}
