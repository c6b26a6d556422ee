package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	spacingRegex  = regexp.MustCompile(`[ \t]+`)
	newlinesRegex = regexp.MustCompile(`\n{3,}`)
)

const truncateSuffix = "..."

// Truncate cuts text down to maxLength characters, appending "..." when a
// cut happened. The returned bool reports whether the text was truncated.
func Truncate(text string, maxLength int) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	runes := []rune(text)
	if len(runes) <= maxLength {
		return text, false
	}

	cut := strings.TrimSpace(string(runes[:maxLength-len(truncateSuffix)]))
	return cut + truncateSuffix, true
}

// NormalizeWhitespace collapses runs of spaces and tabs into a single space
// and caps consecutive blank lines at one.
func NormalizeWhitespace(text string) string {
	if text == "" {
		return ""
	}
	text = spacingRegex.ReplaceAllString(text, " ")
	text = newlinesRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// RemoveDuplicates drops case-insensitive duplicate entries while preserving
// the order of first occurrence. The second list holds the removed entries.
func RemoveDuplicates(items []string) ([]string, []string) {
	seen := make(map[string]bool, len(items))
	var unique []string
	var duplicates []string

	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		normalized := strings.ToLower(trimmed)
		if normalized == "" {
			continue
		}
		if seen[normalized] {
			duplicates = append(duplicates, trimmed)
			continue
		}
		seen[normalized] = true
		unique = append(unique, trimmed)
	}

	return unique, duplicates
}

// FormatDateBR converts an ISO date (YYYY-MM-DD) to DD/MM/YYYY. Invalid
// input is returned unchanged.
func FormatDateBR(dateStr string) string {
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return parsed.Format("02/01/2006")
}

// CalculateAge returns completed years between birthDate and referenceDate,
// both in ISO format. The second return is false when either date fails to
// parse.
func CalculateAge(birthDate, referenceDate string) (int, bool) {
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0, false
	}
	reference, err := time.Parse("2006-01-02", referenceDate)
	if err != nil {
		return 0, false
	}

	age := reference.Year() - birth.Year()
	if reference.Month() < birth.Month() ||
		(reference.Month() == birth.Month() && reference.Day() < birth.Day()) {
		age--
	}
	return age, true
}

// MaskCPF hides the first two CPF groups, keeping the tail for human
// correlation. Input shorter than the canonical format is returned as-is.
func MaskCPF(cpf string) string {
	if len(cpf) < 14 {
		return cpf
	}
	return "***.***" + cpf[7:]
}

// FormatVitalSign renders a measurement with its unit, prefixed with a label
// when one is given.
func FormatVitalSign(value interface{}, unit, label string) string {
	rendered := fmt.Sprintf("%v %s", value, unit)
	if label != "" {
		return label + ": " + rendered
	}
	return rendered
}
