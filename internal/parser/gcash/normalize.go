package gcash

import (
	"regexp"
	"strings"
)

// anchors are the transaction-type keywords that open a logical entry.
// PDF text extraction frequently packs several entries onto one physical
// line, so the normalizer re-inserts a line break before each anchor that is
// not already at a line start.
//
// Longer anchors come first: "Bills Payment to" must win over its inner
// "Payment to" so a bill line is never split in the middle.
var anchors = []string{
	"GGives Auto Repayment",
	"Bills Payment to",
	"Cash-out to",
	"Transfer from",
	"Refund from",
	"Payment to",
	"GCredit",
}

// datePrefix matches a statement date stamp ("2023-05-01" or
// "2023-05-01 10:12 AM") standing alone before an anchor. Such a stamp
// belongs to the entry that follows it and must not be cut off.
var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(?:\s+\d{1,2}:\d{2}\s*(?:AM|PM))?\s*$`)

// normalizeText inserts a newline before every anchor occurrence that does
// not already start a logical line. A line whose only content before the
// anchor is a date stamp is left intact. The transform is idempotent:
// running it on its own output changes nothing.
func normalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/16)

	lineStart := 0 // offset in text of the current line's first byte

	for i := 0; i < len(text); {
		if text[i] == '\n' {
			b.WriteByte('\n')
			i++
			lineStart = i

			continue
		}

		anchor := anchorAt(text, i)
		if anchor == "" {
			b.WriteByte(text[i])
			i++

			continue
		}

		if i > lineStart && !datePrefix.MatchString(text[lineStart:i]) {
			b.WriteByte('\n')
			lineStart = i
		}

		b.WriteString(anchor)
		i += len(anchor)
	}

	return b.String()
}

// anchorAt returns the anchor starting at offset i, or "". Matching the whole
// anchor and skipping past it keeps inner keywords ("Payment to" inside
// "Bills Payment to") from triggering a second break.
func anchorAt(text string, i int) string {
	for _, a := range anchors {
		if strings.HasPrefix(text[i:], a) {
			return a
		}
	}

	return ""
}

// logicalLines normalizes the raw blob and splits it into trimmed, non-empty
// logical lines ready for rule matching.
func logicalLines(text string) []string {
	var lines []string

	for _, line := range strings.Split(normalizeText(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
