package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/cpnews/cpnews/internal/model"
)

// NewsRow renders one news item: bold title, date, wrapped summary and a
// link button when the item has a link.
type NewsRow struct {
	widget.BaseWidget

	item         model.NewsItem
	localization *Localization

	// UI components
	titleLabel   *widget.Label
	dateLabel    *widget.Label
	summaryLabel *widget.Label
	linkBtn      *widget.Button

	// Callbacks
	onOpenLink func(link string)
}

// NewNewsRow creates a new news row widget
func NewNewsRow(item model.NewsItem, localization *Localization, onOpenLink func(link string)) *NewsRow {
	nr := &NewsRow{
		item:         item,
		localization: localization,
		onOpenLink:   onOpenLink,
	}
	nr.ExtendBaseWidget(nr)
	nr.createUI()
	nr.updateFromItem()
	return nr
}

// SetItem replaces the displayed item
func (nr *NewsRow) SetItem(item model.NewsItem) {
	nr.item = item
	nr.updateFromItem()
	nr.Refresh()
}

// Item returns the displayed item
func (nr *NewsRow) Item() model.NewsItem {
	return nr.item
}

// createUI creates the UI components
func (nr *NewsRow) createUI() {
	nr.titleLabel = widget.NewLabel("")
	nr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	nr.titleLabel.Wrapping = fyne.TextWrapWord
	nr.titleLabel.SizeName = theme.SizeNameSubHeadingText

	nr.dateLabel = widget.NewLabel("")
	nr.dateLabel.TextStyle = fyne.TextStyle{Italic: true}
	nr.dateLabel.SizeName = theme.SizeNameCaptionText
	nr.dateLabel.Importance = widget.LowImportance

	nr.summaryLabel = widget.NewLabel("")
	nr.summaryLabel.Wrapping = fyne.TextWrapWord

	nr.linkBtn = widget.NewButton("", func() {
		// Read the current item, rows are reused
		link := nr.item.Link
		if nr.onOpenLink != nil && strings.TrimSpace(link) != "" {
			nr.onOpenLink(link)
		}
	})
	nr.linkBtn.Importance = widget.LowImportance
}

// updateFromItem copies the item into the labels
func (nr *NewsRow) updateFromItem() {
	nr.titleLabel.SetText(singleLine(nr.item.Title))
	nr.dateLabel.SetText(nr.item.Date)
	nr.summaryLabel.SetText(nr.item.Summary)

	nr.linkBtn.SetText(nr.localization.GetText(KeyOpenLink) + " " + IconLink)
	if nr.item.HasLink() {
		nr.linkBtn.Show()
	} else {
		nr.linkBtn.Hide()
	}
}

// CreateRenderer creates the widget renderer
func (nr *NewsRow) CreateRenderer() fyne.WidgetRenderer {
	footer := container.NewBorder(nil, nil, nr.dateLabel, nr.linkBtn)
	content := container.NewVBox(
		nr.titleLabel,
		nr.summaryLabel,
		footer,
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows readable in narrow windows
func (nr *NewsRow) MinSize() fyne.Size {
	size := nr.BaseWidget.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	return size
}

// singleLine collapses line breaks and tabs in titles
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
