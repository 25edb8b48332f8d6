package seeder

import "testing"

func TestParseIndustries_Embedded(t *testing.T) {
	names, err := parseIndustries(industriesYAML)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(names) == 0 {
		t.Fatalf("expected embedded industries")
	}
}

func TestParseIndustries_TrimsAndDedupes(t *testing.T) {
	src := []byte("industries:\n  - \" Retail \"\n  - retail\n  - \"\"\n  - Healthcare\n")
	names, err := parseIndustries(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(names) != 2 || names[0] != "Retail" || names[1] != "Healthcare" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestParseIndustries_InvalidYAML(t *testing.T) {
	if _, err := parseIndustries([]byte("industries: [unterminated")); err == nil {
		t.Fatalf("expected decode error")
	}
}
