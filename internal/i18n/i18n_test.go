package i18n

import "testing"

func TestForLanguage_FallsBackToEnglish(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		code string
		want string
	}{
		{"en", "en"},
		{"hi", "hi"},
		{"es", "es"},
		{"ar", "ar"},
		{"fr", "en"},
		{"", "en"},
		{"EN", "en"},
	}

	for _, tc := range testCases {
		if got := ForLanguage(tc.code); got.Code != tc.want {
			t.Errorf("ForLanguage(%q): expected %s catalog, got %s", tc.code, tc.want, got.Code)
		}
	}
}

func TestCatalogs_AreComplete(t *testing.T) {
	t.Parallel()

	for _, code := range SupportedLanguages() {
		s := ForLanguage(code)
		if s.AppName == "" || s.LoginTitle == "" || s.UnexpectedError == "" {
			t.Errorf("%s: catalog has empty core strings", code)
		}
		if s.ResendInSeconds == nil || s.UpToKg == nil || s.EtaMinutes == nil || s.WalletBalance == nil {
			t.Errorf("%s: catalog has nil parameterized strings", code)
		}
		if msg := s.ResendInSeconds(30); msg == "" {
			t.Errorf("%s: ResendInSeconds returned empty text", code)
		}
	}
}

func TestRegistry_SwapNotifiesSubscribers(t *testing.T) {
	t.Parallel()

	r := NewRegistry("en")

	var notified []string
	r.Subscribe(func(s *Strings) { notified = append(notified, s.Code) })

	r.SetLanguage("hi")
	if r.Current().Code != "hi" {
		t.Errorf("expected active catalog hi, got %s", r.Current().Code)
	}

	// Same language again is a no-op.
	r.SetLanguage("hi")

	r.SetLanguage("ar")

	want := []string{"hi", "ar"}
	if len(notified) != len(want) {
		t.Fatalf("expected %d notifications, got %d (%v)", len(want), len(notified), notified)
	}
	for i := range want {
		if notified[i] != want[i] {
			t.Errorf("notification %d: expected %s, got %s", i, want[i], notified[i])
		}
	}
}

func TestRegistry_UnknownCodeActivatesEnglish(t *testing.T) {
	t.Parallel()

	r := NewRegistry("zz")
	if r.Current().Code != "en" {
		t.Errorf("expected english fallback, got %s", r.Current().Code)
	}
}
