package locale_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/locales"
	"github.com/stretchr/testify/assert"

	"zonetag/config"
	"zonetag/shared/locale"
)

func TestPick(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		resolver  locale.Resolver
		want      string
	}{
		{name: "requested wins", requested: "de", resolver: locale.Static("fr"), want: "de"},
		{name: "resolver used when nothing requested", resolver: locale.Static("fr"), want: "fr"},
		{name: "blank resolver falls back", resolver: locale.Static(" "), want: locale.Fallback},
		{name: "nil resolver falls back", want: locale.Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Pick(tt.requested, tt.resolver))
		})
	}
}

func TestTranslator(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "exact", in: "de", want: "de"},
		{name: "regional variant", in: "de-AT", want: "de"},
		{name: "cldr separator", in: "en_US", want: "en"},
		{name: "british english", in: "en-GB", want: "en_GB"},
		{name: "brazilian portuguese", in: "pt_BR", want: "pt_BR"},
		{name: "unsupported language", in: "zh", want: locale.Fallback},
		{name: "malformed tag", in: "not a locale!", want: locale.Fallback},
		{name: "empty", in: "", want: locale.Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Translator(tt.in).Locale())
		})
	}
}

func TestTranslator_Deterministic(t *testing.T) {
	for _, name := range []string{"de-CH", "fr-CA", "zz"} {
		assert.Equal(t, locale.Translator(name).Locale(), locale.Translator(name).Locale())
	}
}

func TestSupported_StartsWithFallback(t *testing.T) {
	supported := locale.Supported()

	assert.NotEmpty(t, supported)
	assert.Equal(t, locale.Fallback, supported[0])
}

// periodFirstClock writes the day period before the digits, like CLDR "aK:mm".
type periodFirstClock struct {
	locales.Translator
}

func (periodFirstClock) Locale() string {
	return "ja_period_first"
}

func (periodFirstClock) FmtTimeShort(t time.Time) string {
	period := "午前"
	if t.Hour() >= 12 {
		period = "午後"
	}

	return fmt.Sprintf("%s%d:%02d", period, t.Hour()%12, t.Minute())
}

// twentyFourHourClock has no day periods in its short time.
type twentyFourHourClock struct {
	locales.Translator
}

func (twentyFourHourClock) Locale() string {
	return "xx_24h"
}

func (twentyFourHourClock) FmtTimeShort(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func TestPeriod(t *testing.T) {
	trans := locale.Translator("en")

	assert.Equal(t, "am", locale.Period(trans, 9))
	assert.Equal(t, "am", locale.Period(trans, 0))
	assert.Equal(t, "pm", locale.Period(trans, 12))
	assert.Equal(t, "pm", locale.Period(trans, 13))
}

func TestMeridiemOf(t *testing.T) {
	tests := []struct {
		name  string
		trans locales.Translator
		want  locale.Meridiem
	}{
		{name: "period after digits", trans: locale.Translator("en"), want: locale.Meridiem{AM: " am", PM: " pm"}},
		{name: "period before digits", trans: periodFirstClock{locale.Translator("en")}, want: locale.Meridiem{AM: "午前", PM: "午後", Prefix: true}},
		{name: "no periods", trans: twentyFourHourClock{locale.Translator("en")}, want: locale.Meridiem{AM: " AM", PM: " PM"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.MeridiemOf(tt.trans))
		})
	}
}

func TestClock12(t *testing.T) {
	tests := []struct {
		name         string
		trans        locales.Translator
		hour, minute int
		want         string
	}{
		{name: "en afternoon", trans: locale.Translator("en"), hour: 13, minute: 0, want: "1:00 pm"},
		{name: "en midnight", trans: locale.Translator("en"), hour: 0, minute: 5, want: "12:05 am"},
		{name: "en noon", trans: locale.Translator("en"), hour: 12, minute: 30, want: "12:30 pm"},
		{name: "period first", trans: periodFirstClock{locale.Translator("en")}, hour: 13, minute: 5, want: "午後1:05"},
		{name: "24 hour locale", trans: twentyFourHourClock{locale.Translator("en")}, hour: 23, minute: 59, want: "11:59 PM"},
		{name: "de has no periods", trans: locale.Translator("de"), hour: 13, minute: 0, want: "1:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Clock12(tt.trans, tt.hour, tt.minute))
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Display.Locale = "ja"

	assert.Equal(t, "ja", locale.FromConfig(cfg).Locale())
}
