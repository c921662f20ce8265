// Package translate formats user-facing messages through a locale-aware
// printer.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
	printerLock sync.RWMutex
)

// DefaultLocale is used when the host does not report any locale.
const DefaultLocale = "en-US"

func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ppclift: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// Printer returns the shared message printer.
func Printer() *message.Printer {
	printerOnce.Do(load)

	printerLock.RLock()
	defer printerLock.RUnlock()

	return printer
}

// Use replaces the shared printer with one for the given BCP 47 tag.
//
// Only messages formatted after the call are affected. Package-level
// sentinel errors are formatted at init and keep the host locale.
func Use(tag string) (err error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return
	}
	printerOnce.Do(func() {})

	printerLock.Lock()
	defer printerLock.Unlock()

	printer = message.NewPrinter(lang)
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
