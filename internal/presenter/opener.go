package presenter

import (
	"net/url"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
)

// Opener opens a url outside of envlinks, normally in a new browser tab.
type Opener interface {
	Open(rawURL string) error
}

type browserOpener struct{}

func NewBrowserOpener() Opener {
	return browserOpener{}
}

func (browserOpener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrap(err, "invalid url")
	}
	if !u.IsAbs() {
		return errors.Errorf("refusing to open relative url: %s", rawURL)
	}
	return browser.OpenURL(u.String())
}
