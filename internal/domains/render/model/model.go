package model

// Options control a single Format call.
type Options struct {
	// Locale is a BCP 47 or CLDR name; empty defers to the locale resolver.
	Locale          string
	Use24Hour       bool
	ShowOffset      bool
	IncludeFullDate bool
}

// Preferences are the user-facing display settings applied by Decorate.
type Preferences struct {
	Locale         string
	Use24Hour      bool
	ShowTimeInline bool
	ShowOffset     bool
}

// Annotation is what an event decoration receives: an inline short form,
// empty when inline display is off, and the long form for hover detail.
type Annotation struct {
	Inline string `json:"inline,omitempty"`
	Detail string `json:"detail"`
	// Zone is the registered zone both forms were rendered in.
	Zone string `json:"-"`
}

func (p Preferences) Short() Options {
	return Options{
		Locale:     p.Locale,
		Use24Hour:  p.Use24Hour,
		ShowOffset: p.ShowOffset,
	}
}

func (p Preferences) Long() Options {
	opts := p.Short()
	opts.IncludeFullDate = true

	return opts
}
