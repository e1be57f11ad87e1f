package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
)

var errNeedsConfirmation = errors.New("no terminal to confirm on; pass --yes to proceed")

// confirmOrRefuse asks for confirmation, refusing outright when there is no
// terminal and no Confirm hook.
func confirmOrRefuse(app *App, title string) (bool, error) {
	if app.Confirm == nil && !app.interactive() {
		return false, errNeedsConfirmation
	}
	return app.confirm(title)
}

func confirmForm(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(huh.ThemeBase16()).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}
