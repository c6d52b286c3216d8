// Package pay builds payment and reminder links for settlement instructions.
package pay

import (
	"fmt"
	"io"
	"net/url"

	"github.com/mdp/qrterminal/v3"
)

// UPIOptions identifies the collecting account for payment deep links.
type UPIOptions struct {
	VPA          string // virtual payment address, e.g. "group@upi"
	CurrencyCode string // ISO code placed in the cu parameter
}

// UPILink builds a upi://pay deep link prefilled for the given creditor
// and amount. Payment apps read pa/pn/am/cu from the query.
func UPILink(opts UPIOptions, payeeName, amount string) string {
	code := opts.CurrencyCode
	if code == "" {
		code = "INR"
	}
	q := url.Values{}
	q.Set("pa", opts.VPA)
	q.Set("pn", payeeName)
	q.Set("am", amount)
	q.Set("cu", code)
	return "upi://pay?" + q.Encode()
}

// ReminderLink builds a wa.me share link carrying the nag message for a
// member who owes the given amount.
func ReminderLink(member, symbol, amount string) string {
	msg := fmt.Sprintf("Hey %s! You owe me %s%s. Pay up or I'm deleting your Netflix profile. 🔫",
		member, symbol, amount)
	return "https://wa.me/?text=" + url.QueryEscape(msg)
}

// AvatarURL returns the initials avatar image for a member name.
func AvatarURL(member string) string {
	return "https://api.dicebear.com/7.x/initials/svg?seed=" + url.QueryEscape(member)
}

// WriteQR renders the link as a scannable half-block QR code.
func WriteQR(w io.Writer, link string) {
	qrterminal.GenerateHalfBlock(link, qrterminal.L, w)
}
