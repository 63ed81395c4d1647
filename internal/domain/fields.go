package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// Constraint messages are shown to the user verbatim.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	TagConstraints     = "Tags names should be alphanumeric"
	DateConstraints    = "Dates should be in the format dd-MM-yyyy and must be a valid calendar date"
	ScopeConstraints   = `Scope can only be "c" or "j".`
	IndexConstraints   = "Index is not a non-zero unsigned integer."

	EmailConstraints = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
		"the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

	DescriptionConstraints = "Descriptions should not be blank and should be at most 500 characters long"
)

// DateLayout is the only textual date format accepted from users.
const DateLayout = "02-01-2006"

// MaxDescriptionLength is counted in runes.
const MaxDescriptionLength = 500

var (
	nameRe  = regexp.MustCompile(`^[[:alnum:]][[:alnum:] ]*$`)
	phoneRe = regexp.MustCompile(`^[0-9]{3,}$`)
	tagRe   = regexp.MustCompile(`^[[:alnum:]]+$`)
	emailRe = regexp.MustCompile(
		`^[[:alnum:]]+(?:[+_.-][[:alnum:]]+)*` +
			`@` +
			`(?:[[:alnum:]](?:[[:alnum:]-]*[[:alnum:]])?\.)+` +
			`[[:alnum:]][[:alnum:]-]*[[:alnum:]]$`)
)

// emailDomains rejects domains that match the pattern but are not valid
// lookup names, such as labels longer than 63 octets or "ab--" prefixes.
var emailDomains = idna.New(idna.MapForLookup(), idna.VerifyDNSLength(true))

// IsValidName reports whether s is an acceptable person name or entry title.
func IsValidName(s string) bool {
	return nameRe.MatchString(s)
}

// IsValidPhone reports whether s is an acceptable phone number.
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// IsValidEmail reports whether s is an acceptable email address.
func IsValidEmail(s string) bool {
	if !emailRe.MatchString(s) {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	_, err := emailDomains.ToASCII(s[at+1:])
	return err == nil
}

// IsValidAddress reports whether s is an acceptable address.
func IsValidAddress(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTagName reports whether s is an acceptable tag name.
func IsValidTagName(s string) bool {
	return tagRe.MatchString(s)
}

// IsValidDate reports whether s is a real calendar date in DateLayout.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsValidDescription reports whether s is an acceptable description.
func IsValidDescription(s string) bool {
	return strings.TrimSpace(s) != "" && utf8.RuneCountInString(s) <= MaxDescriptionLength
}
