package catalog

import "strings"

// Course is a single validated catalog entry: a normalized course ID,
// the course title as it appeared in the source file, and the ordered
// list of prerequisite course IDs.
type Course struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Prerequisites []string `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
}

// cutset matches the whitespace the loader strips from lines and fields.
const cutset = " \t\r\n"

// ValidID reports whether id is a well-formed course ID: one or more
// letters followed by one or more digits (think "CSCI200"). A letter
// after the first digit, or any other character, rejects the token.
func ValidID(id string) bool {
	if id == "" {
		return false
	}

	var hasLetter, hasDigit bool
	for _, ch := range []byte(id) {
		switch {
		case isLetter(ch):
			if hasDigit {
				return false
			}
			hasLetter = true
		case isDigit(ch):
			hasDigit = true
		default:
			return false
		}
	}

	return hasLetter && hasDigit
}

// NormalizeLookupID cleans up a user-supplied course ID for lookup. It
// trims whitespace and a stray trailing comma, uppercases the rest,
// then keeps the leading letters-then-digits run and drops anything
// after it. The boolean is false when nothing valid remains.
//
// The returned ID may differ from the input; callers that want to tell
// the user what was actually searched can compare the two.
func NormalizeLookupID(input string) (string, bool) {
	input = strings.ToUpper(strings.Trim(input, cutset))
	if strings.HasSuffix(input, ",") {
		input = strings.Trim(strings.TrimSuffix(input, ","), cutset)
	}
	if input == "" {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(input))

	hasDigit := false
	for _, ch := range []byte(input) {
		if isLetter(ch) {
			if hasDigit {
				break
			}
			b.WriteByte(ch)
			continue
		}
		if isDigit(ch) {
			hasDigit = true
			b.WriteByte(ch)
			continue
		}
		break
	}

	id := b.String()
	if !ValidID(id) {
		return "", false
	}
	return id, true
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
