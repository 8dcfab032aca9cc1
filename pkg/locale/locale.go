// Package locale supplies translated weekday abbreviations for the date
// label. Translations are embedded message files loaded into a go-i18n
// bundle on first use.
package locale

import (
	"embed"
	stderrors "errors"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/go-drift/daydial/pkg/dial"
	"github.com/go-drift/daydial/pkg/errors"
)

//go:embed locales/*.json
var localeFS embed.FS

// Default is the language used when none is configured.
const Default = "en"

var weekdayIDs = [7]string{
	"weekday.sun", "weekday.mon", "weekday.tue", "weekday.wed",
	"weekday.thu", "weekday.fri", "weekday.sat",
}

var (
	loadOnce sync.Once
	bundle   *i18n.Bundle
	loadErr  error
)

func load() (*i18n.Bundle, error) {
	loadOnce.Do(func() {
		const op = "locale.load"
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			loadErr = errors.New(op, errors.KindLocale, err)
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
				continue
			}
			if _, err := b.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
				loadErr = errors.Errorf(op, errors.KindLocale, "%s: %w", name, err)
				return
			}
			slog.Debug("locale loaded", slog.String("file", name))
		}
		bundle = b
	})
	return bundle, loadErr
}

// Languages returns the tags of every embedded translation.
func Languages() []string {
	b, err := load()
	if err != nil {
		return []string{Default}
	}
	tags := b.LanguageTags()
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}

// Weekdays returns upper-cased weekday abbreviations for lang, a BCP 47
// tag such as "fr" or "de-AT". Regional tags match their base language.
// On failure it returns the English names together with a KindLocale error.
func Weekdays(lang string) (dial.WeekdayNames, error) {
	const op = "locale.Weekdays"
	if lang == "" {
		lang = Default
	}
	b, err := load()
	if err != nil {
		return dial.EnglishWeekdays, err
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return dial.EnglishWeekdays, errors.Errorf(op, errors.KindLocale, "bad language %q: %w", lang, err)
	}

	supported := b.LanguageTags()
	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No {
		return dial.EnglishWeekdays, errors.Errorf(op, errors.KindLocale, "no weekday names for %q", lang)
	}
	matched := supported[index]

	loc := i18n.NewLocalizer(b, matched.String())
	upper := cases.Upper(matched)
	var names dial.WeekdayNames
	for i, id := range weekdayIDs {
		msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil {
			return dial.EnglishWeekdays, errors.Errorf(op, errors.KindLocale, "%s: %w", matched, err)
		}
		names[i] = upper.String(msg)
	}
	return names, nil
}

// WeekdaysOrDefault is Weekdays with failures reported through the error
// handler instead of returned.
func WeekdaysOrDefault(lang string) dial.WeekdayNames {
	names, err := Weekdays(lang)
	if err != nil {
		var de *errors.DialError
		if !stderrors.As(err, &de) {
			de = errors.New("locale.WeekdaysOrDefault", errors.KindLocale, err)
		}
		errors.Report(de)
	}
	return names
}
