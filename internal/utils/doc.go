// Package utils provides small helpers shared by the application layers:
// safe numeric conversion, file checks, line-oriented input reading and generic slice helpers.
package utils
