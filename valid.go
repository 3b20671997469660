package opts

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// splitName splits an option spelling into its long name and short name. A
// single character is both. A spelling "long,x" ends with a comma followed by
// exactly one character, which becomes the short name. Panics if the spelling
// is invalid.
func splitName(spelling string) (string, rune) {
	name, short := spelling, rune(0)
	if utf8.RuneCountInString(spelling) == 1 {
		short, _ = utf8.DecodeRuneInString(spelling)
	} else if i := strings.LastIndexByte(spelling, ','); i >= 0 {
		tail := spelling[i+1:]
		if utf8.RuneCountInString(tail) != 1 {
			panic(fmt.Errorf(`option "%s": short name after the comma must be a single character`, spelling))
		}
		short, _ = utf8.DecodeRuneInString(tail)
		name = spelling[:i]
	}
	if short != 0 && (short == '-' || !valid(short)) {
		panic(fmt.Errorf(`option "%s": '%c' cannot be used as a short name`, spelling, short))
	}
	if err := validate(name); err != nil {
		panic(err)
	}
	return name, short
}

// validate verifies a long name
func validate(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("an option name cannot be empty")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf(`"%s" cannot be used as an option name because it starts with '-'`, name)
	}
	for _, r := range name {
		if !valid(r) {
			return fmt.Errorf(`"%s" cannot be used as an option name because it includes the character '%c'`, name, r)
		}
	}
	return nil
}

// valid returns true iff char is valid in an option name.
// Valid characters are letters, digits, the hyphen and the underscore.
func valid(char rune) bool {
	return unicode.IsLetter(char) || unicode.IsDigit(char) || char == '-' || char == '_'
}
