// Package constants holds file-system constants shared across the application.
package constants
