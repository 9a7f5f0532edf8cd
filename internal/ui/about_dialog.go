package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowAboutDialog shows the application name, version and sources
func ShowAboutDialog(window fyne.Window, localization *Localization, version string) {
	title := widget.NewLabel(localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	versionLabel := widget.NewLabel(fmt.Sprintf("%s %s", localization.GetText(KeyVersion), version))
	versionLabel.Importance = widget.LowImportance

	text := widget.NewLabel(localization.GetText(KeyAboutText))
	text.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(title, versionLabel, text)
	d := dialog.NewCustom(localization.GetText(KeyAbout), "OK", content, window)
	d.Resize(fyne.NewSize(SettingsDialogWidth, 0))
	d.Show()
}
