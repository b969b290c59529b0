// Package platform contains OS integration and input parsing glue: URL list
// splitting and validation, content-type detection, filesystem helpers, and
// opening directories in the system file manager.
package platform
