package ui

// Window geometry
const (
	WindowWidth  float32 = 720
	WindowHeight float32 = 560

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 320
)

// URL entry sizing
const (
	URLEntryMinRows = 4
)

// Text fragments
const (
	DashPlaceholder = "—"
)
