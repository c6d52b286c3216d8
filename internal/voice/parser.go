// Package voice turns a dictated sentence into expense form fields.
package voice

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoAmount means the transcript contained no numeric token.
var ErrNoAmount = errors.New("voice: no amount heard")

// PlaceholderTitle is used when the dictation is just an amount.
const PlaceholderTitle = "Voice Item"

// Fields are the form values extracted from a transcript. Amount keeps
// the spoken token verbatim; parsing happens at submission time.
type Fields struct {
	Title  string
	Amount string
	Payer  string
}

// Parse applies the dictation heuristic: the first token that parses as a
// number is the amount, every token before it becomes the title, and the
// last token names the payer when it matches the roster case-insensitively.
// It reads nothing but its arguments.
func Parse(transcript string, members []string) (Fields, error) {
	words := strings.Fields(transcript)

	amountIdx := -1
	for i, w := range words {
		if _, err := strconv.ParseFloat(w, 64); err == nil {
			amountIdx = i
			break
		}
	}
	if amountIdx < 0 {
		return Fields{}, ErrNoAmount
	}

	f := Fields{Amount: words[amountIdx]}

	f.Title = strings.Join(words[:amountIdx], " ")
	if f.Title == "" {
		f.Title = PlaceholderTitle
	}

	if len(words) > 0 {
		last := words[len(words)-1]
		for _, m := range members {
			if strings.EqualFold(m, last) {
				f.Payer = m
				break
			}
		}
	}

	return f, nil
}
