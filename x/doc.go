// Package x contains helpers shared by the extensions: authentication
// checks and the account context of a dispatched call.
package x
