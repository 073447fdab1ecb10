package goquery

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/fwojciec/shopinsight"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9.-]+`)
	phoneRe = regexp.MustCompile(`\+?\d[\d \t\-]{7,}\d`)
)

// minPhoneDigits is the fewest digits a phone number candidate may hold.
const minPhoneDigits = 8

// ExtractContacts finds email addresses and phone numbers in text.
// Matches are deduplicated and returned sorted. False positives such as
// long order numbers are possible.
func ExtractContacts(text string) shopinsight.Contacts {
	emails := make(map[string]struct{})
	for _, m := range emailRe.FindAllString(text, -1) {
		emails[strings.TrimRight(m, ".-")] = struct{}{}
	}

	phones := make(map[string]struct{})
	for _, m := range phoneRe.FindAllString(text, -1) {
		if countDigits(m) >= minPhoneDigits {
			phones[strings.TrimSpace(m)] = struct{}{}
		}
	}

	return shopinsight.Contacts{
		Emails: sortedKeys(emails),
		Phones: sortedKeys(phones),
	}
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
