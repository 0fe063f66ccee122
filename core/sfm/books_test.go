package sfm

import "testing"

func TestMarkerLines(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{IDLine("GEN"), `\id GEN`},
		{ChapterLine(12), `\c 12`},
		{VerseLine(3, 3, "text"), `\v 3 text`},
		{VerseLine(3, 2, "text"), `\v 3 text`},
		{VerseLine(3, 5, "text"), `\v 3-5 text`},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestBooksContent(t *testing.T) {
	var b Books
	b.add("GEN", IDLine("GEN"))
	b.add("GEN", ChapterLine(1))
	b.add("GEN", VerseLine(1, 1, "In the beginning"))

	want := "\\id GEN\n\\c 1\n\\v 1 In the beginning\n"
	if got := string(b.Content("GEN")); got != want {
		t.Errorf("Content() = %q, want %q", got, want)
	}
	if b.Content("EXO") != nil {
		t.Error("Content() of absent book should be nil")
	}
	if b.Has("EXO") || !b.Has("GEN") {
		t.Error("Has() reports wrong membership")
	}
}

func TestBooksCopies(t *testing.T) {
	var b Books
	b.add("GEN", IDLine("GEN"))

	lines := b.Lines("GEN")
	lines[0] = "mutated"
	if b.Lines("GEN")[0] != `\id GEN` {
		t.Error("Lines() exposed internal storage")
	}

	codes := b.Codes()
	codes[0] = "XXX"
	if b.Codes()[0] != "GEN" {
		t.Error("Codes() exposed internal storage")
	}
}

func TestZeroBooks(t *testing.T) {
	var b Books
	if b.Len() != 0 || len(b.Codes()) != 0 || b.Lines("GEN") != nil {
		t.Error("zero Books should be empty")
	}
}
