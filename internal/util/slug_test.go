package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain words", input: "Summer Dress", expected: "summer-dress"},
		{name: "accents stripped", input: "Café Noir!", expected: "cafe-noir"},
		{name: "cyrillic transliterated", input: "Платье Летнее", expected: "plate-letnee"},
		{name: "separators collapse", input: "  a -- b__c  ", expected: "a-b-c"},
		{name: "digits kept", input: "Model 2024", expected: "model-2024"},
		{name: "nothing usable", input: "!!! ???", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugify_TruncatesLongNames(t *testing.T) {
	t.Parallel()

	slug := Slugify(strings.Repeat("ab ", 60))

	assert.LessOrEqual(t, len(slug), maxSlugLength)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "spaces become dashes", input: "Summer Dress.png", expected: "Summer-Dress.png"},
		{name: "path traversal dropped", input: "../../etc/passwd", expected: "passwd"},
		{name: "windows path", input: `C:\\Users\\ann\\photo.jpg`, expected: "photo.jpg"},
		{name: "accents stripped", input: "résumé.webp", expected: "resume.webp"},
		{name: "empty falls back", input: "", expected: "file"},
		{name: "only symbols falls back", input: "***", expected: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, SanitizeFileName(tt.input))
		})
	}
}

func TestSanitizeFileName_KeepsExtensionWhenTruncating(t *testing.T) {
	t.Parallel()

	name := SanitizeFileName(strings.Repeat("x", 300) + ".jpeg")

	assert.Len(t, name, maxFileNameLength)
	assert.True(t, strings.HasSuffix(name, ".jpeg"))
}

func TestSanitizeFolder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "avatars", SanitizeFolder(" Avatars "))
	assert.Equal(t, "shop-logos", SanitizeFolder("shop-logos"))
	assert.Equal(t, "etc", SanitizeFolder("../etc"))
	assert.Equal(t, DefaultUploadFolder, SanitizeFolder(""))
	assert.Equal(t, DefaultUploadFolder, SanitizeFolder("///"))
}
