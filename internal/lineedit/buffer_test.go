package lineedit

import "testing"

func TestAppend(t *testing.T) {
	tests := []struct {
		name   string
		parts  []string
		want   string
		change []bool
	}{
		{"ascii", []string{"he", "llo"}, "hello", []bool{true, true}},
		{"empty fragment", []string{"a", ""}, "a", []bool{true, false}},
		{"control dropped", []string{"a\nb\t", "\x1b"}, "ab", []bool{true, false}},
		{"combining mark composes", []string{"e", "\u0301"}, "\u00e9", []bool{true, true}},
		{"decomposed input composes", []string{"A\u030a"}, "\u00c5", []bool{true}},
		{"no precomposed form", []string{"q\u0301"}, "q\u0301", []bool{true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Buffer
			for i, p := range tt.parts {
				if got := b.Append(p); got != tt.change[i] {
					t.Errorf("Append(%q) = %v, want %v", p, got, tt.change[i])
				}
			}
			if b.String() != tt.want {
				t.Errorf("String() = %q, want %q", b.String(), tt.want)
			}
		})
	}
}

func TestDeleteLast(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"ascii", "abc", "ab"},
		{"single", "a", ""},
		{"precomposed", "cafe\u0301", "caf"},
		{"combining without precomposed form", "xq\u0301", "x"},
		{"emoji with skin tone", "ok\U0001F44D\U0001F3FD", "ok"},
		{"flag", "a\U0001F1E9\U0001F1EA", "a"},
		{"multibyte", "日本語", "日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.text)
			if !b.DeleteLast() {
				t.Fatal("DeleteLast() = false on a non-empty buffer")
			}
			if b.String() != tt.want {
				t.Errorf("after DeleteLast: %q, want %q", b.String(), tt.want)
			}
		})
	}
}

func TestDeleteLastEmpty(t *testing.T) {
	var b Buffer
	if b.DeleteLast() {
		t.Error("DeleteLast() on an empty buffer should report no change")
	}
	b.Append("x")
	b.DeleteLast()
	if b.DeleteLast() {
		t.Error("second DeleteLast() should report no change")
	}
}

func TestSubmit(t *testing.T) {
	b := New("hello")
	if got := b.Submit(); got != "hello" {
		t.Errorf("Submit() = %q, want %q", got, "hello")
	}
	if b.String() != "" {
		t.Errorf("buffer not cleared after Submit: %q", b.String())
	}
	if got := b.Submit(); got != "" {
		t.Errorf("Submit() on empty buffer = %q", got)
	}
}

func TestLen(t *testing.T) {
	b := New("ab\U0001F44D\U0001F3FDe\u0301")
	if b.Len() != 4 {
		t.Errorf("Len() = %d, want 4", b.Len())
	}
	b.Submit()
	if b.Len() != 0 {
		t.Errorf("Len() after Submit = %d, want 0", b.Len())
	}
}
