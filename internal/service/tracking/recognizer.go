package tracking

import "regexp"

// Format names the pattern that recognised a tracking number.
type Format string

const (
	FormatApplication  Format = "application"   // PKG-<digits>
	FormatUPS          Format = "ups"           // 1Z + 16 alphanumerics
	FormatNumeric12    Format = "numeric_12"    // FedEx 12 digit
	FormatNumeric14    Format = "numeric_14"    // FedEx 14 digit
	FormatNumeric20    Format = "numeric_20"    // USPS 20 digit
	FormatLetterFramed Format = "letter_framed" // AA123456789AA
	FormatNumeric      Format = "numeric"       // any 10..15 digit run
)

type Match struct {
	Number string
	Format Format
}

type pattern struct {
	format Format
	re     *regexp.Regexp
}

// Order is precedence: a string matching several patterns is attributed to the
// first one listed, even when a later one names a more specific carrier.
var patterns = []pattern{
	{format: FormatApplication, re: regexp.MustCompile(`PKG-[0-9]+`)},
	{format: FormatUPS, re: regexp.MustCompile(`\b1Z[0-9A-Z]{16}\b`)},
	{format: FormatNumeric12, re: regexp.MustCompile(`\b[0-9]{12}\b`)},
	{format: FormatNumeric14, re: regexp.MustCompile(`\b[0-9]{14}\b`)},
	{format: FormatNumeric20, re: regexp.MustCompile(`\b[0-9]{20}\b`)},
	{format: FormatLetterFramed, re: regexp.MustCompile(`\b[A-Z]{2}[0-9]{9}[A-Z]{2}\b`)},
	{format: FormatNumeric, re: regexp.MustCompile(`\b[0-9]{10,15}\b`)},
}

// Detect scans free text and returns the leftmost match of the first pattern that matches at all.
func Detect(text string) (Match, bool) {
	for _, p := range patterns {
		if found := p.re.FindString(text); found != "" {
			return Match{Number: found, Format: p.format}, true
		}
	}
	return Match{}, false
}
