package documents

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
)

const rupee = "₹"

// FormatAmount prefixes the amount with the rupee sign. The number is printed
// as given: no rounding, no grouping, no conversion.
func FormatAmount(amount float64) string {
	return rupee + " " + strconv.FormatFloat(amount, 'f', -1, 64)
}

// DefaultLocale is used when no locale is configured or the configured one is
// not recognised.
const DefaultLocale = "en-IN"

// shortDateLayouts are numeric short-date layouts per locale, in the order
// the matcher sees them. The first entry is the fallback.
var shortDateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.MustParse("en-IN"), "2/1/2006"},
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.Hindi, "2/1/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Japanese, "2006/1/2"},
	{language.Chinese, "2006/1/2"},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(shortDateLayouts))
	for i, l := range shortDateLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// ShortDateLayout returns the time layout for locale's numeric short date.
// Unknown or malformed locales get the en-IN layout.
func ShortDateLayout(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return shortDateLayouts[0].layout
	}
	_, idx, conf := dateMatcher.Match(tag)
	if conf == language.No {
		return shortDateLayouts[0].layout
	}
	return shortDateLayouts[idx].layout
}

// FormatDate prints t as a short date in loc using layout. A zero time prints
// as "N/A".
func FormatDate(t time.Time, layout string, loc *time.Location) string {
	if t.IsZero() {
		return placeholder
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(layout)
}
