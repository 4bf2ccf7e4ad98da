package domain

import "testing"

func TestArticle_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Article
		want bool
	}{
		{ArticleDer, true},
		{ArticleDie, true},
		{ArticleDas, true},
		{"Der", false},
		{"den", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.in.IsValid(); got != tt.want {
			t.Errorf("Article(%q).IsValid() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseArticle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Article
		wantOK bool
	}{
		{"der", ArticleDer, true},
		{" DIE ", ArticleDie, true},
		{"Das", ArticleDas, true},
		{"dem", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseArticle(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseArticle(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSessionStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	if SessionStatusInProgress.IsTerminal() {
		t.Error("IN_PROGRESS must not be terminal")
	}
	for _, s := range []SessionStatus{SessionStatusCompleted, SessionStatusAbandoned, SessionStatusFailed} {
		if !s.IsTerminal() {
			t.Errorf("%s must be terminal", s)
		}
		if !s.IsValid() {
			t.Errorf("%s must be valid", s)
		}
	}
	if SessionStatus("ACTIVE").IsValid() {
		t.Error("unknown status must be invalid")
	}
}
