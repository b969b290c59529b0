// Package model defines domain data structures used across the app: download
// requests and results, task bookkeeping, and status enums. Structures are
// designed for direct use by the UI and the download dispatcher.
package model
