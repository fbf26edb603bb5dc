package util

import (
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxSlugLength     = 80
	maxFileNameLength = 100
	defaultFileName   = "file"
	// DefaultUploadFolder is used when the client names no folder.
	DefaultUploadFolder = "products"
)

var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e", 'ж': "zh",
	'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o",
	'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "h", 'ц': "ts",
	'ч': "ch", 'ш': "sh", 'щ': "sch", 'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu",
	'я': "ya",
}

// stripMarks removes combining accents: "Café" becomes "Cafe".
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

// Slugify turns a display name into a lowercase, dash-separated URL segment.
// Cyrillic is transliterated; anything else outside [a-z0-9] becomes a separator.
// The result may be empty when the input has no usable characters.
func Slugify(s string) string {
	s = strings.ToLower(stripMarks(s))

	var b strings.Builder
	pendingDash := false
	for _, r := range s {
		var chunk string
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			chunk = string(r)
		default:
			if latin, ok := cyrillicToLatin[r]; ok {
				if latin == "" {
					// soft and hard signs vanish without breaking the word
					continue
				}
				chunk = latin
			}
		}
		if chunk == "" {
			pendingDash = b.Len() > 0
			continue
		}
		if pendingDash {
			b.WriteByte('-')
			pendingDash = false
		}
		b.WriteString(chunk)
	}

	slug := b.String()
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}

	return slug
}

// SanitizeFileName keeps the base name of an uploaded file and reduces it to [a-zA-Z0-9._-].
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = stripMarks(name)

	var b strings.Builder
	lastDash := false
	for _, r := range name {
		ok := r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_')
		if ok {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	clean := strings.Trim(b.String(), ".-_")
	if len(clean) > maxFileNameLength {
		ext := path.Ext(clean)
		if len(ext) > 10 {
			ext = ""
		}
		clean = clean[:maxFileNameLength-len(ext)] + ext
	}
	if clean == "" || clean == "." {
		return defaultFileName
	}

	return clean
}

// SanitizeFolder reduces an upload folder to a single lowercase path segment.
func SanitizeFolder(folder string) string {
	folder = strings.ToLower(strings.TrimSpace(folder))

	var b strings.Builder
	for _, r := range folder {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return DefaultUploadFolder
	}
	if len(clean) > 40 {
		clean = clean[:40]
	}

	return clean
}
