// Package locale resolves the display locale used for rendering and maps it
// to CLDR calendar data.
package locale

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/sv"
	"golang.org/x/text/language"

	"zonetag/config"
)

// Fallback is used when neither the caller nor the resolver names a locale,
// or when the named locale has no match.
const Fallback = "en"

// Resolver supplies the host's active display locale.
type Resolver interface {
	Locale() string
}

// Static is a Resolver that always answers the same locale.
type Static string

func (s Static) Locale() string {
	return string(s)
}

// FromConfig resolves to the configured display locale.
func FromConfig(cfg *config.Config) Resolver {
	return Static(cfg.Display.Locale)
}

// Fallback translator first: the matcher answers index 0 when nothing fits.
var translators = []locales.Translator{
	en.New(),
	en_GB.New(),
	de.New(),
	es.New(),
	fr.New(),
	it.New(),
	ja.New(),
	nl.New(),
	pl.New(),
	pt_BR.New(),
	ru.New(),
	sv.New(),
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(translators))
	for i, trans := range translators {
		tags[i] = language.Make(toBCP47(trans.Locale()))
	}

	return language.NewMatcher(tags)
}()

// Pick returns requested when set, otherwise the resolver's locale, otherwise Fallback.
func Pick(requested string, resolver Resolver) string {
	if requested = strings.TrimSpace(requested); requested != "" {
		return requested
	}

	if resolver != nil {
		if current := strings.TrimSpace(resolver.Locale()); current != "" {
			return current
		}
	}

	return Fallback
}

// Translator returns the closest supported translator for name, which may
// use either BCP 47 ("de-AT") or CLDR ("de_AT") separators.
func Translator(name string) locales.Translator {
	tag, err := language.Parse(toBCP47(name))
	if err != nil {
		return translators[0]
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return translators[0]
	}

	return translators[index]
}

// Supported lists the CLDR names of the bundled translators.
func Supported() []string {
	names := make([]string, len(translators))
	for i, trans := range translators {
		names[i] = trans.Locale()
	}

	return names
}

// Meridiem is the 12-hour day period of a locale as it appears in the
// locale's short time: the text before or after the digits, with its spacing.
type Meridiem struct {
	AM     string
	PM     string
	Prefix bool
}

var defaultMeridiem = Meridiem{AM: " AM", PM: " PM"}

var meridiems = func() map[string]Meridiem {
	res := make(map[string]Meridiem, len(translators))
	for _, trans := range translators {
		res[trans.Locale()] = MeridiemOf(trans)
	}

	return res
}()

// MeridiemOf reads the day periods from trans.FmtTimeShort at 01:00 and 13:00.
// Locales whose short time has no distinct periods use " AM"/" PM" after the digits.
func MeridiemOf(trans locales.Translator) Meridiem {
	amPrefix, amSuffix := affixes(trans.FmtTimeShort(time.Date(2000, time.January, 1, 1, 0, 0, 0, time.UTC)))
	pmPrefix, pmSuffix := affixes(trans.FmtTimeShort(time.Date(2000, time.January, 1, 13, 0, 0, 0, time.UTC)))

	switch {
	case strings.TrimSpace(amSuffix) != "" && strings.TrimSpace(pmSuffix) != "" && amSuffix != pmSuffix:
		return Meridiem{AM: amSuffix, PM: pmSuffix}
	case strings.TrimSpace(amPrefix) != "" && strings.TrimSpace(pmPrefix) != "" && amPrefix != pmPrefix:
		return Meridiem{AM: amPrefix, PM: pmPrefix, Prefix: true}
	default:
		return defaultMeridiem
	}
}

// For returns the affix for a 24-hour clock hour.
func (m Meridiem) For(hour int) string {
	if hour >= 12 {
		return m.PM
	}

	return m.AM
}

// Clock12 renders hour (0-23) and minute as a 12-hour clock in trans's
// period style, e.g. "1:05 pm" or "午後1:05". Hour 0 is shown as 12.
func Clock12(trans locales.Translator, hour, minute int) string {
	m := meridiemFor(trans)

	display := hour % 12
	if display == 0 {
		display = 12
	}

	digits := fmt.Sprintf("%d:%02d", display, minute)
	if m.Prefix {
		return m.For(hour) + digits
	}

	return digits + m.For(hour)
}

// Period returns the day period name for a 24-hour clock hour.
func Period(trans locales.Translator, hour int) string {
	m := meridiemFor(trans)

	return strings.TrimSpace(m.For(hour))
}

func meridiemFor(trans locales.Translator) Meridiem {
	if m, ok := meridiems[trans.Locale()]; ok {
		return m
	}

	return MeridiemOf(trans)
}

// affixes splits a formatted time around its first and last digit.
func affixes(formatted string) (prefix, suffix string) {
	first, last := -1, -1

	for i, r := range formatted {
		if unicode.IsDigit(r) {
			if first < 0 {
				first = i
			}

			last = i + utf8.RuneLen(r)
		}
	}

	if first < 0 {
		return "", ""
	}

	return formatted[:first], formatted[last:]
}

func toBCP47(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
}
