package hotline

import "testing"

func TestFindByCountrySubstring(t *testing.T) {
	d := NewDirectory()

	matches := d.FindByCountry("united")
	if len(matches) != 3 {
		t.Fatalf("FindByCountry(united) returned %d entries, want 3", len(matches))
	}

	got := map[string]bool{}
	for _, m := range matches {
		got[m.Country] = true
	}
	for _, want := range []string{"United States", "United Arab Emirates", "United Kingdom"} {
		if !got[want] {
			t.Errorf("FindByCountry(united) missing %q", want)
		}
	}
}

func TestFindByCountryCaseInsensitive(t *testing.T) {
	d := NewDirectory()
	if len(d.FindByCountry("UNITED STATES")) != 1 {
		t.Error("uppercase query should match United States")
	}
	if len(d.FindByCountry("zim")) != 1 {
		t.Error("partial lowercase query should match Zimbabwe")
	}
}

func TestLookup(t *testing.T) {
	d := NewDirectory()

	e := d.Lookup("india")
	if e == nil {
		t.Fatal("Lookup(india) returned nil")
	}
	if e.Crisis == "" {
		t.Error("India entry should carry a crisis number")
	}

	if d.Lookup("atlantis") != nil {
		t.Error("Lookup(atlantis) should return nil")
	}
	if d.Lookup("") != nil {
		t.Error("Lookup of empty query should return nil")
	}
}

func TestOverlayReplacesAndAppends(t *testing.T) {
	d := NewDirectoryWithOverlay([]Entry{
		{Key: "india", Country: "India", Crisis: "14416", Service: "Tele-MANAS"},
		{Key: "iceland", Country: "Iceland", Emergency: "112", Crisis: "1717"},
		{Key: "", Country: "Nowhere"}, // dropped: no key
	})

	in, ok := d.ByKey("india")
	if !ok || in.Crisis != "14416" {
		t.Errorf("overlay should replace india entry, got %+v", in)
	}
	if _, ok := d.ByKey("iceland"); !ok {
		t.Error("overlay should append iceland entry")
	}
	if len(d.All()) != len(NewDirectory().All())+1 {
		t.Error("overlay with one new valid entry should grow the table by one")
	}
}

func TestFallbackAlwaysAvailable(t *testing.T) {
	entries := Fallback()
	if len(entries) < 3 {
		t.Fatalf("fallback has %d entries, want at least 3", len(entries))
	}

	var hasGlobal, hasUS bool
	for _, e := range entries {
		if e.ReferralURL != "" {
			hasGlobal = true
		}
		if e.Country == "United States" && e.Crisis == "988" {
			hasUS = true
		}
	}
	if !hasGlobal {
		t.Error("fallback should include a generic referral link")
	}
	if !hasUS {
		t.Error("fallback should include the US 988 lifeline")
	}
}
