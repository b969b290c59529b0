// Package ui implements the Fyne user interface: the download form, the
// batch log view, and the settings dialog.
package ui
