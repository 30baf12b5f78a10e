package curate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"shopzada-etl/core/table"
	"shopzada-etl/core/textfix"
	"shopzada-etl/core/utils"

	"github.com/araddon/dateparse"
)

var (
	embeddedIntRe = regexp.MustCompile(`-?\d+`)
	numericJunkRe = regexp.MustCompile(`[^0-9.eE+-]`)
	nonDigitRe    = regexp.MustCompile(`\D`)
)

// cardMaskPrefix is the fixed literal prepended to the last four digits of
// a masked card number.
const cardMaskPrefix = "**** **** **** "

// trimKey casts a natural key to trimmed text. Empty keys stay null.
func trimKey(c table.Cell) table.Cell {
	if c.IsNull() {
		return table.Null()
	}
	s := c.TrimmedString()
	if s == "" {
		return table.Null()
	}
	return table.Scalar(s)
}

// cleanText repairs encoding and whitespace of a free-text value.
func cleanText(c table.Cell) table.Cell {
	if c.IsNull() {
		return table.Null()
	}
	s := textfix.Fix(c.String())
	if s == "" {
		return table.Null()
	}
	return table.Scalar(s)
}

// cleanTextPreservingType repairs only textual cells, leaving numeric and
// temporal values from typed staging columns untouched.
func cleanTextPreservingType(c table.Cell) table.Cell {
	if c.IsNull() {
		return c
	}
	if _, isText := c.Value.(string); !isText {
		return c
	}
	return cleanText(c)
}

// lowerText is cleanText plus lowercasing, for enum-like fields.
func lowerText(c table.Cell) table.Cell {
	cleaned := cleanText(c)
	if cleaned.IsNull() {
		return cleaned
	}
	return table.Scalar(strings.ToLower(cleaned.String()))
}

// parseTimestamp parses a value leniently into a timestamp. Unparseable
// values become null, never errors.
func parseTimestamp(c table.Cell) table.Cell {
	if c.IsNull() {
		return table.Null()
	}
	if ts, ok := c.Value.(time.Time); ok {
		return table.Scalar(ts)
	}
	s := c.TrimmedString()
	if s == "" {
		return table.Null()
	}
	ts, err := dateparse.ParseAny(s)
	if err != nil {
		return table.Null()
	}
	return table.Scalar(ts)
}

// parseDate parses leniently and truncates to a calendar date.
func parseDate(c table.Cell) table.Cell {
	ts := parseTimestamp(c)
	if ts.IsNull() {
		return ts
	}
	t := ts.Value.(time.Time)
	return table.Scalar(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// cleanBirthdate parses a birthdate and rejects implausible values: implied
// age under 5 or over 110 years, or a year before 1900. These are
// plausibility filters, not a claim that the remainder is correct.
func cleanBirthdate(c table.Cell, now time.Time) table.Cell {
	d := parseDate(c)
	if d.IsNull() {
		return d
	}
	t := d.Value.(time.Time)

	age := now.Year() - t.Year()
	if now.Month() < t.Month() || (now.Month() == t.Month() && now.Day() < t.Day()) {
		age--
	}
	if age < 5 || age > 110 {
		return table.Null()
	}
	if t.Year() < 1900 {
		return table.Null()
	}
	return d
}

// parseNumeric parses currency/numeric-as-text: thousands separators and
// any non-numeric decoration are stripped before the float parse.
// Unparseable values become null.
func parseNumeric(c table.Cell) table.Cell {
	if c.IsNull() {
		return table.Null()
	}
	if _, isText := c.Value.(string); !isText {
		if f, ok := utils.ToFloat(c.Value); ok {
			return table.Scalar(f)
		}
	}
	s := strings.TrimSpace(c.String())
	s = strings.ReplaceAll(s, ",", "")
	s = numericJunkRe.ReplaceAllString(s, "")
	switch s {
	case "", ".", "-", "+":
		return table.Null()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return table.Null()
	}
	return table.Scalar(f)
}

// extractInt pulls the first embedded integer out of text like "13days" or
// "4PCs". No digits means null.
func extractInt(c table.Cell) table.Cell {
	if c.IsNull() {
		return table.Null()
	}
	m := embeddedIntRe.FindString(c.String())
	if m == "" {
		return table.Null()
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return table.Null()
	}
	return table.Scalar(n)
}

// maskCard strips non-digits from a card number and exposes only the last
// four digits behind a fixed mask. Fewer than four digits cannot be masked
// safely and become null.
func maskCard(c table.Cell) table.Cell {
	if c.IsNull() {
		return table.Null()
	}
	digits := nonDigitRe.ReplaceAllString(c.String(), "")
	if len(digits) < 4 {
		return table.Null()
	}
	return table.Scalar(cardMaskPrefix + digits[len(digits)-4:])
}
