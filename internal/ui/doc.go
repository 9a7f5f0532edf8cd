package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the news list of the current locale, the header actions and the
// notification panel, and drains fetch results once per frame. All UI strings
// are localized via Localization.
