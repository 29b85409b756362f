package fixedwidth

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustLayout(t *testing.T, names []string, widths []int) Layout {
	t.Helper()
	l, err := NewLayout(names, widths)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	return l
}

func TestNewLayoutValidation(t *testing.T) {
	cases := map[string]struct {
		names  []string
		widths []int
	}{
		"empty":          {nil, nil},
		"length":         {[]string{"a", "b"}, []int{1}},
		"blank name":     {[]string{"a", " "}, []int{1, 2}},
		"duplicate name": {[]string{"a", "a"}, []int{1, 2}},
		"zero width":     {[]string{"a", "b"}, []int{1, 0}},
	}
	for name, tc := range cases {
		if _, err := NewLayout(tc.names, tc.widths); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestSplitTrimsFields(t *testing.T) {
	l := mustLayout(t, []string{"name", "dist", "unit"}, []int{8, 6, 3})
	row, err := l.Split("Sun     4.2ly Rj")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if diff := cmp.Diff([]string{"Sun", "4.2ly", "Rj"}, row.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if row.Get("dist") != "4.2ly" {
		t.Fatalf("Get(dist) = %q", row.Get("dist"))
	}
	if row.Get("missing") != "" {
		t.Fatal("expected unknown column to be absent")
	}
}

func TestSplitShortLineYieldsEmptyTrailingFields(t *testing.T) {
	l := mustLayout(t, []string{"a", "b", "c"}, []int{4, 4, 4})
	row, err := l.Split("abcdef")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if diff := cmp.Diff([]string{"abcd", "ef", ""}, row.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitIgnoresTextPastLayout(t *testing.T) {
	l := mustLayout(t, []string{"a", "b"}, []int{2, 2})
	row, err := l.Split("11223344\r\n")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if diff := cmp.Diff([]string{"11", "22"}, row.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitCountsCharactersNotBytes(t *testing.T) {
	l := mustLayout(t, []string{"STAR", "NOTES", "BOL-LUM"}, []int{8, 14, 10})
	// "ö" is two bytes; byte offsets would pull the trailing "3" of NOTES
	// into BOL-LUM.
	row, err := l.Split("Röss 128flare star 1230.00362")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if diff := cmp.Diff([]string{"Röss 128", "flare star 123", "0.00362"}, row.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatPadsByCharacters(t *testing.T) {
	l := mustLayout(t, []string{"STAR", "V"}, []int{8, 4})
	line, err := l.Format([]string{"Röss 128", "11.1"})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if line != "Röss 12811.1" {
		t.Fatalf("Format = %q", line)
	}
	if _, err := l.Format([]string{"Röss 128x"}); err == nil {
		t.Fatal("expected nine characters to overflow a width of eight")
	}
}

func TestSplitRejectsInvalidUTF8(t *testing.T) {
	l := mustLayout(t, []string{"a"}, []int{4})
	if _, err := l.Split("ab\xffc"); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestFormatSplitRoundTrip(t *testing.T) {
	l := mustLayout(t, []string{"name", "teff", "radius", "unit"}, []int{12, 8, 8, 4})
	rows := [][]string{
		{"Proxima Cen", "3042K", "0.154", ""},
		{"Luhman 16A", "1350K", "1.00Rj", "Rj"},
		{"", "", "", ""},
		{"GJ 1061", "----", "12.5Re", "Re"},
		{"Röss 128", "3192K", "0.197", ""},
	}
	for _, want := range rows {
		line, err := l.Format(want)
		if err != nil {
			t.Fatalf("Format(%v): %v", want, err)
		}
		row, err := l.Split(line)
		if err != nil {
			t.Fatalf("Split(%q): %v", line, err)
		}
		if diff := cmp.Diff(want, row.Fields()); diff != "" {
			t.Fatalf("round trip mismatch for %q (-want +got):\n%s", line, diff)
		}
	}
}

func TestFormatRejectsOverwideValue(t *testing.T) {
	l := mustLayout(t, []string{"a"}, []int{3})
	if _, err := l.Format([]string{"abcd"}); err == nil || !strings.Contains(err.Error(), "exceeds width") {
		t.Fatalf("expected width error, got %v", err)
	}
}
