package dsl

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ID is an external identifier of a project, build type or VCS root.
type ID string

// MaxIDLength is the longest identifier the build server accepts.
const MaxIDLength = 225

var idPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// uuidNamespace seeds StableUUID so regenerated settings keep their uuids.
var uuidNamespace = uuid.MustParse("6f2f4e3a-6b0c-5d7e-9a4b-2c1d0e9f8a7b")

func (id ID) String() string { return string(id) }

// RelativeID marks an id as relative to the root project.
func RelativeID(s string) ID { return ID(s) }

// ToID derives an identifier from a display name. Diacritics are stripped,
// characters outside [A-Za-z0-9_] act as word breaks and each word is capitalized.
// The body always starts with a letter, so it stays valid once a prefix is stripped.
// A non-empty prefix is joined with "_"; an empty body yields the prefix alone.
func ToID(name, prefix string) ID {
	ascii, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		ascii = name
	}

	var b strings.Builder
	upperNext := true
	for _, r := range ascii {
		isWordRune := r == '_' || (r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)))
		if b.Len() == 0 && isWordRune && !unicode.IsLetter(r) {
			continue
		}
		switch {
		case r == '_':
			b.WriteRune(r)
			upperNext = true
		case isWordRune:
			if upperNext {
				r = unicode.ToUpper(r)
				upperNext = false
			}
			b.WriteRune(r)
		default:
			upperNext = true
		}
	}

	body := b.String()
	var id string
	switch {
	case prefix == "":
		id = body
	case body == "":
		id = prefix
	default:
		id = prefix + "_" + body
	}
	if len(id) > MaxIDLength {
		id = id[:MaxIDLength]
	}
	return ID(id)
}

// ValidID reports whether id is acceptable to the build server and, if not, why.
func ValidID(id ID) (bool, string) {
	switch {
	case id == "":
		return false, "empty"
	case len(id) > MaxIDLength:
		return false, "longer than 225 characters"
	case !idPattern.MatchString(string(id)):
		return false, "must start with a latin letter and contain only latin letters, digits and underscores"
	}
	return true, ""
}

// StableUUID returns a deterministic UUID for id.
func StableUUID(id ID) string {
	return uuid.NewSHA1(uuidNamespace, []byte(id)).String()
}
