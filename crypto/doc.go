// Package crypto implements ed25519 keys used to sign transactions. Keys
// are amino encodable and a public key is turned into the condition that a
// valid signature grants.
package crypto
