// Package utils provides decorators that every application stack uses:
// panic recovery, logging, savepoints and action tagging.
package utils
