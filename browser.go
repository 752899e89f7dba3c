package bioapis

import (
	"fmt"

	"github.com/pkg/browser"
)

// OpenInBrowser opens url in the user's default web browser.
func OpenInBrowser(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("opening %s in browser: %w", url, err)
	}
	return nil
}
