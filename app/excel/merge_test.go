package excel

import (
	"reflect"
	"testing"
)

func TestMergeRowsReconcilesDuplicates(t *testing.T) {
	rows := [][]string{
		{"C1", "P1", "W1", "OK", "NG"},
		{"C1", "P1", "W1", "OK", ""},
	}
	want := [][]string{
		{"C1", "P1", "W1", "OK", "NG"},
	}
	if got := MergeRows(rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("merge = %v, want %v", got, want)
	}
}

func TestMergeRowsLaterValueOverwrites(t *testing.T) {
	rows := [][]string{
		{"C1", "P1", "W1", "", "NG"},
		{"C1", "P1", "W1", "OK", "OK"},
	}
	want := [][]string{
		{"C1", "P1", "W1", "OK", "OK"},
	}
	if got := MergeRows(rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("merge = %v, want %v", got, want)
	}
}

func TestMergeRowsNormalizesExtraResultColumn(t *testing.T) {
	rows := [][]string{
		{"C1", "P1", "W1", "OK", "OK", "weird"},
		{"C2", "P2", "W2", "OK", "OK", "OK"},
	}
	got := MergeRows(rows)
	if got[0][5] != "NG" {
		t.Fatalf("col 5 = %q, want NG", got[0][5])
	}
	if got[1][5] != "OK" {
		t.Fatalf("col 5 = %q, want OK", got[1][5])
	}
}

func TestMergeRowsKeepsFirstSeenOrder(t *testing.T) {
	rows := [][]string{
		{"C2", "P2", "W2", "OK", "OK"},
		{"C1", "P1", "W1", "OK", "OK"},
		{"C2", "P2", "W2", "NG", "OK"},
	}
	got := MergeRows(rows)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0][0] != "C2" || got[1][0] != "C1" {
		t.Fatalf("order = [%s %s], want [C2 C1]", got[0][0], got[1][0])
	}
	if got[0][3] != "NG" {
		t.Fatalf("merged col 3 = %q, want NG", got[0][3])
	}
}

func TestMergeRowsDoesNotMutateInput(t *testing.T) {
	rows := [][]string{
		{"C1", "P1", "W1", "OK", "OK", "weird"},
	}
	MergeRows(rows)
	if rows[0][5] != "weird" {
		t.Fatalf("input mutated: %v", rows[0])
	}
}
