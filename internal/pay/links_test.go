package pay

import (
	"net/url"
	"strings"
	"testing"
)

func TestUPILink(t *testing.T) {
	link := UPILink(UPIOptions{VPA: "hackathon@upi", CurrencyCode: "INR"}, "Bob", "250.00")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if u.Scheme != "upi" || u.Host != "pay" {
		t.Errorf("link = %q, want upi://pay?...", link)
	}

	q := u.Query()
	checks := map[string]string{
		"pa": "hackathon@upi",
		"pn": "Bob",
		"am": "250.00",
		"cu": "INR",
	}
	for key, want := range checks {
		if got := q.Get(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestUPILink_DefaultCurrency(t *testing.T) {
	link := UPILink(UPIOptions{VPA: "x@upi"}, "A", "1")
	u, _ := url.Parse(link)
	if got := u.Query().Get("cu"); got != "INR" {
		t.Errorf("cu = %q, want INR", got)
	}
}

func TestReminderLink_Encoded(t *testing.T) {
	link := ReminderLink("Alice", "₹", "50")
	if !strings.HasPrefix(link, "https://wa.me/?text=") {
		t.Fatalf("link = %q, want wa.me share link", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	msg := u.Query().Get("text")
	if !strings.Contains(msg, "Hey Alice!") || !strings.Contains(msg, "₹50") {
		t.Errorf("decoded message = %q", msg)
	}
	// The raw query must not leak unencoded spaces.
	if strings.Contains(link, " ") {
		t.Errorf("link contains raw spaces: %q", link)
	}
}

func TestAvatarURL_EscapesName(t *testing.T) {
	link := AvatarURL("Aman Gupta")
	if strings.Contains(link, " ") {
		t.Errorf("avatar URL not escaped: %q", link)
	}
	if !strings.Contains(link, "seed=Aman+Gupta") {
		t.Errorf("avatar URL = %q", link)
	}
}
