package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/cpnews/cpnews/internal/config"
	"github.com/cpnews/cpnews/internal/model"
)

// SettingsResult is what the user confirmed in the settings dialog
type SettingsResult struct {
	Language    model.Locale
	AutoRefresh bool
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	cacheDir     string
	onSaved      func(SettingsResult)

	// UI components
	languageSelect  *widget.Select
	autoRefreshChk  *widget.Check
	cacheDirLabel   *widget.Label
	languageByLabel map[string]model.Locale
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, cacheDir string, onSaved func(SettingsResult)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		cacheDir:     cacheDir,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the dialog in one call
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, cacheDir string, onSaved func(SettingsResult)) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, cacheDir, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection shows display names
	sd.languageByLabel = make(map[string]model.Locale)
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageByLabel[label] = code
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.autoRefreshChk = widget.NewCheck(sd.localization.GetText(KeyAutoRefresh), nil)

	sd.cacheDirLabel = widget.NewLabel(sd.cacheDir)
	sd.cacheDirLabel.Wrapping = fyne.TextWrapBreak

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		sd.autoRefreshChk,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyCacheDirectory)+":"),
		sd.cacheDirLabel,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for label, code := range sd.languageByLabel {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
	sd.autoRefreshChk.SetChecked(sd.settings.GetAutoRefresh())
}

// selection returns the values currently shown in the dialog
func (sd *SettingsDialog) selection() SettingsResult {
	lang, ok := sd.languageByLabel[sd.languageSelect.Selected]
	if !ok {
		lang = sd.settings.GetLanguage()
	}
	return SettingsResult{Language: lang, AutoRefresh: sd.autoRefreshChk.Checked}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	result := sd.selection()
	sd.settings.SetLanguage(result.Language)
	sd.settings.SetAutoRefresh(result.AutoRefresh)

	if sd.onSaved != nil {
		sd.onSaved(result)
	}
}
