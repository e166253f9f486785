package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/locales"

	"zonetag/infras/otel"
	"zonetag/internal/domains/render/model"
	"zonetag/shared/constant"
	"zonetag/shared/locale"
	"zonetag/shared/logger"
	"zonetag/shared/timezone"
)

const logComponent = "render"

// ErrRenderFailed marks a registered zone id that could not be rendered.
// It is distinct from the "not set" outcome, which is not an error.
var ErrRenderFailed = errors.New("render failed")

// Lookup is the read side of the registry.
type Lookup interface {
	Get(identityID string) (zone string, ok bool)
}

type Renderer interface {
	// Format returns ok=false with a nil error when identityID has no timezone.
	Format(ctx context.Context, identityID string, instant time.Time, opts model.Options) (text string, ok bool, err error)
	// Decorate renders both forms for an event; same contract as Format.
	Decorate(ctx context.Context, identityID string, instant time.Time, prefs model.Preferences) (model.Annotation, bool, error)
}

type serviceImpl struct {
	lookup   Lookup
	resolver locale.Resolver
	otel     otel.Otel
}

func New(lookup Lookup, resolver locale.Resolver, otel otel.Otel) Renderer {
	return &serviceImpl{
		lookup:   lookup,
		resolver: resolver,
		otel:     otel,
	}
}

func (s *serviceImpl) Format(ctx context.Context, identityID string, instant time.Time, opts model.Options) (string, bool, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Format")
	defer scope.End()

	zone, ok := s.lookup.Get(identityID)
	if !ok {
		return "", false, nil
	}

	scope.SetAttribute("render.zone", zone)

	local, err := s.localize(identityID, zone, instant)
	if err != nil {
		scope.TraceError(err)

		return "", false, err
	}

	return render(local, locale.Translator(locale.Pick(opts.Locale, s.resolver)), opts), true, nil
}

func (s *serviceImpl) Decorate(ctx context.Context, identityID string, instant time.Time, prefs model.Preferences) (model.Annotation, bool, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Decorate")
	defer scope.End()

	zone, ok := s.lookup.Get(identityID)
	if !ok {
		return model.Annotation{}, false, nil
	}

	local, err := s.localize(identityID, zone, instant)
	if err != nil {
		scope.TraceError(err)

		return model.Annotation{}, false, err
	}

	trans := locale.Translator(locale.Pick(prefs.Locale, s.resolver))

	annotation := model.Annotation{
		Detail: render(local, trans, prefs.Long()),
		Zone:   zone,
	}

	if prefs.ShowTimeInline {
		annotation.Inline = render(local, trans, prefs.Short())
	}

	return annotation, true, nil
}

func (s *serviceImpl) localize(identityID, zone string, instant time.Time) (time.Time, error) {
	loc, err := timezone.LoadLocation(zone)
	if err != nil {
		logger.Component(logComponent).Warn().
			Err(err).
			Str("identity", identityID).
			Str("zone", zone).
			Msg("registered timezone cannot be rendered")

		return time.Time{}, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	return instant.In(loc), nil
}

// render expects t already converted to the target zone. The clock portion
// is identical in the short and long forms.
func render(t time.Time, trans locales.Translator, opts model.Options) string {
	text := clock(t, trans, opts.Use24Hour)

	if opts.IncludeFullDate {
		text = fullDate(t, trans) + ", " + text
	}

	if opts.ShowOffset {
		text += " " + timezone.OffsetLabel(t)
	}

	return text
}

func clock(t time.Time, trans locales.Translator, use24Hour bool) string {
	if use24Hour {
		return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	}

	return locale.Clock12(trans, t.Hour(), t.Minute())
}

func fullDate(t time.Time, trans locales.Translator) string {
	if date := trans.FmtDateFull(t); date != "" {
		return date
	}

	return t.Format("Monday, 2 January 2006")
}
