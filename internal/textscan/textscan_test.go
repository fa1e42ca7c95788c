package textscan

import (
	"testing"
)

func TestParseItemLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantText    string
		wantChecked bool
		wantBox     bool
		wantOK      bool
	}{
		{"unchecked brackets", "[ ] call dentist", "call dentist", false, true, true},
		{"unchecked empty brackets", "[] call dentist", "call dentist", false, true, true},
		{"checked brackets", "[x] bread", "bread", true, true, true},
		{"checked brackets upper", "[X] bread", "bread", true, true, true},
		{"unchecked box glyph", "☐ eggs", "eggs", false, true, true},
		{"checked box glyph", "☑ eggs", "eggs", true, true, true},
		{"dash bullet", "- 2 apples", "2 apples", false, false, true},
		{"dot bullet", "• milk", "milk", false, false, true},
		{"star bullet", "* flour", "flour", false, false, true},
		{"numbered period", "1. eggs", "eggs", false, false, true},
		{"numbered paren", "2) flour", "flour", false, false, true},
		{"bullet then checkbox", "- [x] bread", "bread", true, true, true},
		{"plain prose", "remember to call", "", false, false, false},
		{"empty", "   ", "", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := ParseItemLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseItemLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if item.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", item.Text, tt.wantText)
			}
			if item.IsChecked != tt.wantChecked {
				t.Errorf("IsChecked = %v, want %v", item.IsChecked, tt.wantChecked)
			}
			if item.HasBox != tt.wantBox {
				t.Errorf("HasBox = %v, want %v", item.HasBox, tt.wantBox)
			}
		})
	}
}

func TestSplitQuantity(t *testing.T) {
	tests := []struct {
		input        string
		wantQuantity string
		wantName     string
	}{
		{"2 apples", "2", "apples"},
		{"1 gallon milk", "1 gallon", "milk"},
		{"2 lbs ground beef", "2 lbs", "ground beef"},
		{"12 eggs", "12", "eggs"},
		{"1.5 kg flour", "1.5 kg", "flour"},
		{"bread", "", "bread"},
		{"ground beef", "", "ground beef"},
		{"gallon milk", "", "gallon milk"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q, name := SplitQuantity(tt.input)
			if q != tt.wantQuantity || name != tt.wantName {
				t.Errorf("SplitQuantity(%q) = (%q, %q), want (%q, %q)",
					tt.input, q, name, tt.wantQuantity, tt.wantName)
			}
		})
	}
}

func TestCategorizeItem(t *testing.T) {
	tests := []struct {
		item string
		want string
	}{
		{"apples", "produce"},
		{"whole milk", "dairy"},
		{"ground beef", "meat"},
		{"sourdough bread", "bakery"},
		{"jasmine rice", "pantry"},
		{"frozen peas", "frozen"},
		{"paper towels", "household"},
		{"mystery item", "other"},
	}
	for _, tt := range tests {
		if got := CategorizeItem(tt.item); got != tt.want {
			t.Errorf("CategorizeItem(%q) = %q, want %q", tt.item, got, tt.want)
		}
	}
}

func TestFieldValue(t *testing.T) {
	tests := []struct {
		line   string
		label  string
		want   string
		wantOK bool
	}{
		{"Phone: 555-123-4567", "phone", "555-123-4567", true},
		{"email: jo@example.com", "email", "jo@example.com", true},
		{"  Date: March 5  ", "date", "March 5", true},
		{"Phone: 555", "email", "", false},
		{"just prose", "phone", "", false},
	}
	for _, tt := range tests {
		got, ok := FieldValue(tt.line, tt.label)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("FieldValue(%q, %q) = (%q, %v), want (%q, %v)",
				tt.line, tt.label, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFindDate(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"due 2024-03-05 sharp", "2024-03-05"},
		{"see you 3/15/2024", "3/15/2024"},
		{"party on March 5, 2024!", "March 5, 2024"},
		{"Meeting tomorrow at 2:00 PM", "tomorrow"},
		{"lunch Friday", "Friday"},
		{"no dates here", ""},
	}
	for _, tt := range tests {
		if got := FindDate(tt.text); got != tt.want {
			t.Errorf("FindDate(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestFindTime(t *testing.T) {
	if got := FindTime("Meeting tomorrow at 2:00 PM with @Sarah"); got != "2:00 PM" {
		t.Errorf("FindTime = %q, want %q", got, "2:00 PM")
	}
	if got := FindTime("no time"); got != "" {
		t.Errorf("FindTime = %q, want empty", got)
	}
}

func TestCountItemLines(t *testing.T) {
	text := "Groceries\n- milk\n[x] bread\nplain line\n1. eggs"
	if got := CountItemLines(text); got != 3 {
		t.Errorf("CountItemLines = %d, want 3", got)
	}
}

func TestEmailPattern_Exact(t *testing.T) {
	// The match must be the exact address substring.
	text := "reach me at jo.smith+notes@example.co.uk anytime"
	if got := EmailPattern.FindString(text); got != "jo.smith+notes@example.co.uk" {
		t.Errorf("EmailPattern.FindString = %q", got)
	}
}
