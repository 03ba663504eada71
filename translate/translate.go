// Package translate localizes the message text of hwbits errors and logs.
package translate

import (
	"errors"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

var tag language.Tag

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hwbits: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Error creates a sentinel error from an en-US message.
func Error(key message.Reference, args ...any) error {
	return errors.New(From(key, args...))
}

// Language returns the language tag selected for message output.
func Language() language.Tag {
	return tag
}
