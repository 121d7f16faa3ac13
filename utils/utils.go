package utils

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golang-cz/textcase"
)

// LowerFirst lower-cases the first character of name. It reports false when
// that character is not a letter.
func LowerFirst(name string) (string, bool) {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || !unicode.IsLetter(r) {
		return name, false
	}
	return string(unicode.ToLower(r)) + name[size:], true
}

// GuardSymbol derives an include-guard macro from a header path,
// "out/steam_api.h" -> "STEAM_API_H".
func GuardSymbol(headerPath string) string {
	base := filepath.Base(headerPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToUpper(textcase.SnakeCase(base)) + "_H"
}
