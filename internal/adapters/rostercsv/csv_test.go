package rostercsv

import (
	"strings"
	"testing"
)

func TestParseSkipsHeaderAndBlankLines(t *testing.T) {
	input := strings.Join([]string{
		"home_address,name,client_office",
		"1 First St Newtown,Alice,200 George St",
		"",
		"2 Second Ave Glebe,Bob,",
		"   ,,",
		"3 Third Rd Manly,,",
	}, "\n")

	emps, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(emps) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(emps))
	}

	if emps[0].ID != 1 || emps[0].Name != "Alice" || emps[0].HomeAddress != "1 First St Newtown" {
		t.Fatalf("unexpected first employee: %+v", emps[0])
	}
	if emps[0].ClientOfficeAddress != "200 George St" {
		t.Fatalf("expected client office address, got %q", emps[0].ClientOfficeAddress)
	}

	if emps[1].ClientOfficeAddress != "" {
		t.Fatalf("expected empty client office for Bob, got %q", emps[1].ClientOfficeAddress)
	}
}

func TestParseDefaultsMissingName(t *testing.T) {
	input := "home,name,client\n10 Fourth St,,\n"

	emps, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(emps) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(emps))
	}
	if emps[0].Name != "Employee 1" {
		t.Fatalf("expected placeholder name, got %q", emps[0].Name)
	}
}

func TestParseRejectsEmptyHomeAddress(t *testing.T) {
	input := "home,name\n,NoHome\n"

	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for empty home address")
	}
}

func TestParseRowWithTwoFields(t *testing.T) {
	input := "home,name\n5 Fifth St,Carol\n"

	emps, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emps) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(emps))
	}
	if emps[0].ClientOfficeAddress != "" {
		t.Fatalf("expected no client office address, got %q", emps[0].ClientOfficeAddress)
	}
}
