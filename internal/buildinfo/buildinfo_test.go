package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	Version, Commit, Date = "dev", "unknown", "unknown"
	if got := Short(); got != "dev" {
		t.Fatalf("Short = %q", got)
	}
	if got := Banner(); got != "kiosk dev" {
		t.Fatalf("Banner = %q", got)
	}

	Commit = "0123456789abcdef"
	if got := Short(); got != "0123456" {
		t.Fatalf("Short = %q", got)
	}

	Version, Date = "v0.3.1", "2026-10-19"
	if got := Banner(); got != "kiosk v0.3.1 (2026-10-19)" {
		t.Fatalf("Banner = %q", got)
	}
}
