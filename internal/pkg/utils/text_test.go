package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Run("Short Text Untouched", func(t *testing.T) {
		result, truncated := Truncate("texto curto", 100)
		assert.Equal(t, "texto curto", result, "text under the limit should pass through")
		assert.False(t, truncated)
	})

	t.Run("Long Text Cut With Ellipsis", func(t *testing.T) {
		result, truncated := Truncate(strings.Repeat("a", 50), 20)
		assert.True(t, truncated)
		assert.Equal(t, 20, len([]rune(result)), "result should land exactly on the limit")
		assert.True(t, strings.HasSuffix(result, "..."))
	})

	t.Run("Multibyte Text Counted By Runes", func(t *testing.T) {
		result, truncated := Truncate(strings.Repeat("ã", 30), 10)
		assert.True(t, truncated)
		assert.Equal(t, 10, len([]rune(result)))
	})

	t.Run("Surrounding Whitespace Trimmed", func(t *testing.T) {
		result, truncated := Truncate("  texto  ", 100)
		assert.Equal(t, "texto", result)
		assert.False(t, truncated)
	})

	t.Run("Empty Input", func(t *testing.T) {
		result, truncated := Truncate("   ", 100)
		assert.Equal(t, "", result)
		assert.False(t, truncated)
	})
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Run("Collapses Spaces And Tabs", func(t *testing.T) {
		assert.Equal(t, "dor de cabeça", NormalizeWhitespace("dor   de \t cabeça"))
	})

	t.Run("Caps Blank Lines At One", func(t *testing.T) {
		assert.Equal(t, "linha um\n\nlinha dois", NormalizeWhitespace("linha um\n\n\n\nlinha dois"))
	})

	t.Run("Trims Edges", func(t *testing.T) {
		assert.Equal(t, "texto", NormalizeWhitespace("  texto  "))
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Equal(t, "", NormalizeWhitespace(""))
	})
}

func TestRemoveDuplicates(t *testing.T) {
	t.Run("Case Insensitive Preserving First Occurrence", func(t *testing.T) {
		unique, removed := RemoveDuplicates([]string{"Hipertensão", "hipertensão", "Diabetes", "HIPERTENSÃO"})
		assert.Equal(t, []string{"Hipertensão", "Diabetes"}, unique)
		assert.Equal(t, []string{"hipertensão", "HIPERTENSÃO"}, removed)
	})

	t.Run("Blank Entries Dropped Silently", func(t *testing.T) {
		unique, removed := RemoveDuplicates([]string{"Asma", "  ", ""})
		assert.Equal(t, []string{"Asma"}, unique)
		assert.Empty(t, removed)
	})

	t.Run("No Duplicates", func(t *testing.T) {
		unique, removed := RemoveDuplicates([]string{"Asma", "Rinite"})
		assert.Equal(t, []string{"Asma", "Rinite"}, unique)
		assert.Empty(t, removed)
	})
}

func TestFormatDateBR(t *testing.T) {
	t.Run("ISO Date Converted", func(t *testing.T) {
		assert.Equal(t, "15/03/1985", FormatDateBR("1985-03-15"))
	})

	t.Run("Invalid Date Returned Unchanged", func(t *testing.T) {
		assert.Equal(t, "15/03/1985", FormatDateBR("15/03/1985"))
		assert.Equal(t, "", FormatDateBR(""))
	})
}

func TestCalculateAge(t *testing.T) {
	t.Run("Birthday Already Passed", func(t *testing.T) {
		age, ok := CalculateAge("1985-03-15", "2024-06-10")
		assert.True(t, ok)
		assert.Equal(t, 39, age)
	})

	t.Run("Birthday Not Yet Reached", func(t *testing.T) {
		age, ok := CalculateAge("1985-09-15", "2024-06-10")
		assert.True(t, ok)
		assert.Equal(t, 38, age)
	})

	t.Run("Birthday On Reference Date", func(t *testing.T) {
		age, ok := CalculateAge("1985-06-10", "2024-06-10")
		assert.True(t, ok)
		assert.Equal(t, 39, age)
	})

	t.Run("Invalid Dates", func(t *testing.T) {
		_, ok := CalculateAge("not-a-date", "2024-06-10")
		assert.False(t, ok)

		_, ok = CalculateAge("1985-03-15", "not-a-date")
		assert.False(t, ok)
	})
}

func TestMaskCPF(t *testing.T) {
	t.Run("Canonical CPF Masked", func(t *testing.T) {
		assert.Equal(t, "***.***.789-00", MaskCPF("123.456.789-00"))
	})

	t.Run("Short Input Returned As Is", func(t *testing.T) {
		assert.Equal(t, "12345", MaskCPF("12345"))
	})
}

func TestFormatVitalSign(t *testing.T) {
	t.Run("With Label", func(t *testing.T) {
		assert.Equal(t, "FC: 72 bpm", FormatVitalSign(72, "bpm", "FC"))
	})

	t.Run("Without Label", func(t *testing.T) {
		assert.Equal(t, "36.5 °C", FormatVitalSign(36.5, "°C", ""))
	})
}
