package services

import (
	"reflect"
	"testing"
)

func TestTagsRoundTrip(t *testing.T) {
	cases := [][]string{
		{"Creator", "Innovator"},
		{"solo"},
		{},
	}
	for _, tags := range cases {
		got := SplitTags(JoinTags(tags))
		if !reflect.DeepEqual(got, tags) {
			t.Errorf("Round trip of %v gave %v", tags, got)
		}
	}
}

func TestSplitTags_EmptyColumn(t *testing.T) {
	got := SplitTags("")
	if got == nil || len(got) != 0 {
		t.Errorf("Empty column should decode to an empty list, got %#v", got)
	}
}

func TestSplitTags_PreservesOrderAndDuplicates(t *testing.T) {
	got := SplitTags("b,a,b")
	want := []string{"b", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitTags = %v, want %v", got, want)
	}
}
