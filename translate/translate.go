// Package translate formats user visible messages for the user's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the locale used when the environment does not name one.
const Fallback = "en-US"

var printer = sync.OnceValue(func() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("mix: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
})

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer().Sprintf(key, args...)
}

// In formats key for an explicit locale, ignoring the environment.
func In(tag language.Tag, key message.Reference, args ...any) string {
	return message.NewPrinter(tag).Sprintf(key, args...)
}
