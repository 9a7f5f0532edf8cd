package ui

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/cpnews/cpnews/internal/config"
	"github.com/cpnews/cpnews/internal/logger"
	"github.com/cpnews/cpnews/internal/model"
	"github.com/cpnews/cpnews/internal/platform"
	"github.com/cpnews/cpnews/internal/session"
)

// AutoRefresher is the part of the scheduler the UI toggles
type AutoRefresher interface {
	SetEnabled(enabled bool)
}

// Options carries the collaborators of RootUI
type Options struct {
	State       *session.State
	Settings    *config.Settings
	AutoRefresh AutoRefresher
	CacheDir    string
	Version     string
	// OpenLink defaults to platform.OpenLink
	OpenLink func(link string) error
	// Now defaults to time.Now
	Now func() time.Time
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	state        *session.State
	settings     *config.Settings
	localization *Localization
	autoRefresh  AutoRefresher
	cacheDir     string
	version      string
	openLink     func(link string) error
	now          func() time.Time

	// Header
	titleText   *canvas.Text
	refreshBtn  *widget.Button
	languageBtn *widget.Button
	settingsBtn *widget.Button
	aboutBtn    *widget.Button

	// News list
	newsBox    *fyne.Container
	newsScroll *container.Scroll
	emptyLabel *widget.Label
	rows       []*NewsRow

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	shownMessage          string

	// Frame loop
	stopOnce sync.Once
	stop     chan struct{}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, opts Options) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(opts.State.Locale())

	ui := &RootUI{
		window:       window,
		state:        opts.State,
		settings:     opts.Settings,
		localization: localization,
		autoRefresh:  opts.AutoRefresh,
		cacheDir:     opts.CacheDir,
		version:      opts.Version,
		openLink:     opts.OpenLink,
		now:          opts.Now,
		stop:         make(chan struct{}),
	}
	if ui.openLink == nil {
		ui.openLink = platform.OpenLink
	}
	if ui.now == nil {
		ui.now = time.Now
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.renderNews()
	ui.updateHeader()

	logger.Infof("[ui] root initialized, locale=%s items=%d", ui.state.Locale(), len(ui.state.CurrentItems()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleText = canvas.NewText(ui.localization.GetText(KeyAppTitle), BrandColor)
	ui.titleText.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleText.TextSize = theme.TextHeadingSize()

	ui.refreshBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyRefresh), theme.ViewRefreshIcon(), ui.onRefreshClick)
	ui.refreshBtn.Importance = widget.HighImportance

	ui.languageBtn = widget.NewButton(IconLanguage+" "+ui.localization.GetText(KeyToggleLanguage), ui.onToggleLanguage)
	ui.languageBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.aboutBtn = widget.NewButtonWithIcon("", theme.InfoIcon(), ui.onShowAbout)
	ui.aboutBtn.Importance = widget.LowImportance

	// Logo is optional
	left := container.NewHBox()
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		left.Add(logoImage)
	}
	left.Add(ui.titleText)

	actions := container.NewHBox(ui.languageBtn, ui.refreshBtn, ui.settingsBtn, ui.aboutBtn)
	header := container.NewBorder(nil, nil, left, actions)

	// Notification panel under the header (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewVBox(ui.notificationSpinner, ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(header, widget.NewSeparator(), ui.notificationContainer)

	// News list
	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoNews))
	ui.emptyLabel.Wrapping = fyne.TextWrapWord
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.newsBox = container.NewVBox()
	ui.newsScroll = container.NewVScroll(ui.newsBox)

	content := container.NewBorder(
		top, // top
		nil, // bottom
		nil, // left
		nil, // right
		container.NewStack(ui.newsScroll, container.NewCenter(ui.emptyLabel)),
	)

	ui.window.SetContent(content)
	ui.window.SetOnClosed(ui.StopFrameLoop)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), ui.onRefreshClick)
	aboutItem := fyne.NewMenuItem(ui.localization.GetText(KeyAbout), ui.onShowAbout)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range model.Locales() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.state.Locale() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), refreshItem, settingsItem, aboutItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// StartFrameLoop polls the session state on the UI thread every FrameInterval
func (ui *RootUI) StartFrameLoop() {
	go func() {
		ticker := time.NewTicker(FrameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(ui.onFrame)
			case <-ui.stop:
				return
			}
		}
	}()
}

// StopFrameLoop ends the frame loop; safe to call more than once
func (ui *RootUI) StopFrameLoop() {
	ui.stopOnce.Do(func() { close(ui.stop) })
}

// onFrame drains at most one fetch result and syncs the widgets.
// Must run on the UI thread.
func (ui *RootUI) onFrame() {
	now := ui.now()
	if ui.state.Poll(now) {
		ui.renderNews()
		ui.updateHeader()
	}
	ui.updateNotification(now)
}

// RequestRefresh starts a refresh of the current locale. Must run on the UI thread.
func (ui *RootUI) RequestRefresh() bool {
	started := ui.state.RequestRefresh()
	ui.updateHeader()
	ui.updateNotification(ui.now())
	return started
}

// onRefreshClick handles the refresh button
func (ui *RootUI) onRefreshClick() {
	if !ui.RequestRefresh() {
		logger.Debugf("[ui] %s", ui.localization.GetText(KeyRefreshIgnored))
	}
}

// onToggleLanguage switches locale; an empty target list is fetched
func (ui *RootUI) onToggleLanguage() {
	ui.state.ToggleLocale()
	ui.applyLocale()
}

// onLanguageChange switches to a specific locale from the menu or settings
func (ui *RootUI) onLanguageChange(lang model.Locale) {
	if lang == ui.state.Locale() {
		return
	}
	ui.onToggleLanguage()
}

// applyLocale persists the locale and updates every localized widget
func (ui *RootUI) applyLocale() {
	locale := ui.state.Locale()
	ui.localization.SetLanguage(locale)
	if ui.settings != nil {
		ui.settings.SetLanguage(locale)
	}
	logger.Infof("[ui] locale switched to %s", locale)

	ui.refreshUITexts()
	ui.renderNews()
	ui.updateNotification(ui.now())
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleText.Text = ui.localization.GetText(KeyAppTitle)
	ui.titleText.Refresh()
	ui.languageBtn.SetText(IconLanguage + " " + ui.localization.GetText(KeyToggleLanguage))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoNews))
	ui.shownMessage = ""
	ui.updateHeader()
	ui.createMenu()
}

// updateHeader reflects the fetch flag on the refresh button
func (ui *RootUI) updateHeader() {
	if ui.state.IsFetching() {
		ui.refreshBtn.SetText(ui.localization.GetText(KeyRefreshing))
		ui.refreshBtn.Disable()
	} else {
		ui.refreshBtn.SetText(ui.localization.GetText(KeyRefresh))
		ui.refreshBtn.Enable()
	}
}

// renderNews rebuilds the list for the current locale, reusing rows
func (ui *RootUI) renderNews() {
	items := ui.state.CurrentItems()

	for len(ui.rows) < len(items) {
		ui.rows = append(ui.rows, NewNewsRow(model.NewsItem{}, ui.localization, ui.onOpenLink))
	}

	objects := make([]fyne.CanvasObject, 0, len(items))
	for i, item := range items {
		ui.rows[i].SetItem(item)
		objects = append(objects, ui.rows[i])
	}
	ui.newsBox.Objects = objects
	ui.newsBox.Refresh()
	ui.newsScroll.ScrollToTop()

	if len(items) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
}

// updateNotification shows the spinner while fetching and the transient
// message while it is within its display window.
func (ui *RootUI) updateNotification(now time.Time) {
	fetching := ui.state.IsFetching()
	msg, hasMsg := ui.state.Message(now)

	text := ""
	if hasMsg {
		text = ui.localization.FormatMessage(msg)
		ui.notificationLabel.Importance = severityImportance(msg.Severity)
	}

	if fetching {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}

	if text != ui.shownMessage {
		ui.shownMessage = text
		ui.notificationLabel.SetText(text)
	}
	if hasMsg {
		ui.notificationLabel.Show()
	} else {
		ui.notificationLabel.Hide()
	}

	if fetching || hasMsg {
		ui.notificationContainer.Show()
	} else {
		ui.notificationContainer.Hide()
	}
}

// severityImportance maps message severity onto label colors
func severityImportance(s model.Severity) widget.Importance {
	switch s {
	case model.SeverityError:
		return widget.DangerImportance
	case model.SeverityWarning:
		return widget.WarningImportance
	default:
		return widget.MediumImportance
	}
}

// onOpenLink opens a news link in the browser
func (ui *RootUI) onOpenLink(link string) {
	if err := ui.openLink(link); err != nil {
		logger.Warnf("[ui] open link %s: %v", link, err)
		ui.state.ShowMessage(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyErrorOpenLink), err), model.SeverityWarning, ui.now())
		ui.updateNotification(ui.now())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	if ui.settings == nil {
		return
	}
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.cacheDir, ui.onSettingsSaved)
}

// onSettingsSaved applies confirmed settings
func (ui *RootUI) onSettingsSaved(result SettingsResult) {
	if ui.autoRefresh != nil {
		ui.autoRefresh.SetEnabled(result.AutoRefresh)
	}
	logger.Infof("[ui] settings saved: language=%s auto_refresh=%v", result.Language, result.AutoRefresh)
	ui.onLanguageChange(result.Language)
	ui.state.ShowMessage(ui.localization.GetText(KeySettingsSaved), model.SeverityInfo, ui.now())
	ui.updateNotification(ui.now())
}

// onShowAbout shows the about dialog
func (ui *RootUI) onShowAbout() {
	ShowAboutDialog(ui.window, ui.localization, ui.version)
}
