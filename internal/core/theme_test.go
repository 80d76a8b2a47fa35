package core

import "testing"

func TestLookupThemeFallback(t *testing.T) {
	if got := LookupTheme("minimal-gray"); got.Name != "Minimal Gray" {
		t.Fatalf("unexpected theme: %+v", got)
	}
	// Unknown ids resolve to the first catalog entry, never an error.
	if got := LookupTheme("does-not-exist"); got.ID != Themes[0].ID {
		t.Fatalf("expected fallback to %s, got %s", Themes[0].ID, got.ID)
	}
	if got := LookupTheme(""); got.ID != Themes[0].ID {
		t.Fatalf("expected fallback for empty id, got %s", got.ID)
	}
}

func TestThemesFullyPopulated(t *testing.T) {
	for _, th := range Themes {
		roles := map[string]string{
			"headerBg":        th.Styles.HeaderBg,
			"headerText":      th.Styles.HeaderText,
			"accentColor":     th.Styles.AccentColor,
			"tableHeaderBg":   th.Styles.TableHeaderBg,
			"tableHeaderText": th.Styles.TableHeaderText,
			"borderColor":     th.Styles.BorderColor,
			"backgroundColor": th.Styles.BackgroundColor,
			"textColor":       th.Styles.TextColor,
			"mutedTextColor":  th.Styles.MutedTextColor,
			"totalHighlight":  th.Styles.TotalHighlight,
		}
		for role, v := range roles {
			if v == "" {
				t.Fatalf("theme %s has empty style role %s", th.ID, role)
			}
		}
		if th.Name == "" || th.Description == "" || th.Preview == "" {
			t.Fatalf("theme %s has empty metadata", th.ID)
		}
	}
}
