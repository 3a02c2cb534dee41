package core

import "testing"

func TestPreferenceLedger_AddKeepsOrder(t *testing.T) {
	l := NewPreferenceLedger()
	l.Add(101, Like)
	l.Add(102, Dislike)
	l.Add(103, Like)

	got := l.Snapshot()
	want := []Preference{
		{RecipeID: 101, Rating: Like},
		{RecipeID: 102, Rating: Dislike},
		{RecipeID: 103, Rating: Like},
	}
	if len(got) != len(want) {
		t.Fatalf("Snapshot len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Snapshot[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPreferenceLedger_AddUpsert(t *testing.T) {
	l := NewPreferenceLedger()
	l.Add(101, Like)
	l.Add(102, Like)
	// 改变主意：覆盖评价，但保持原有位置
	l.Add(101, Dislike)

	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	if r, _ := l.Rating(101); r != Dislike {
		t.Errorf("Rating(101) = %d, want %d", r, Dislike)
	}
	if ids := l.RecipeIDs(); ids[0] != 101 || ids[1] != 102 {
		t.Errorf("RecipeIDs = %v, want [101 102]", ids)
	}
}

func TestPreferenceLedger_Remove(t *testing.T) {
	l := NewPreferenceLedger()
	l.Add(101, Like)
	l.Add(102, Dislike)

	if err := l.Remove(101); err != nil {
		t.Fatalf("Remove(101) = %v", err)
	}
	if l.Contains(101) {
		t.Error("Contains(101) = true after Remove")
	}
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}
}

func TestPreferenceLedger_RemoveMissing(t *testing.T) {
	l := NewPreferenceLedger()
	l.Add(101, Like)

	err := l.Remove(999)
	if err == nil {
		t.Fatal("Remove(999) = nil, want error")
	}
	if !IsPreferenceNotFound(err) {
		t.Errorf("IsPreferenceNotFound(%v) = false", err)
	}
}

func TestPreferenceLedger_Polarity(t *testing.T) {
	l := NewPreferenceLedger()
	l.Add(101, Like)
	l.Add(102, Dislike)
	l.Add(103, Like)

	if got := l.Liked(); len(got) != 2 || got[0] != 101 || got[1] != 103 {
		t.Errorf("Liked = %v, want [101 103]", got)
	}
	if got := l.Disliked(); len(got) != 1 || got[0] != 102 {
		t.Errorf("Disliked = %v, want [102]", got)
	}
}
