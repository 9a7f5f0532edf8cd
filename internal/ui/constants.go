package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
	IconLink     = "↗"
)

// MessageSeparator joins an error category label and its text
const MessageSeparator = ": "

// Layout sizing
const (
	WindowWidth  float32 = 400
	WindowHeight float32 = 600

	LogoSize float32 = 28

	RowMinWidth float32 = 280

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 300
)

// Frame loop
const (
	FrameInterval = 100 * time.Millisecond
)
