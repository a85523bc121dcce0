/*
Package sigs provides the authentication middleware that verifies the
signatures of a transaction and maintains per key sequence numbers for replay
protection.

Every signature carries the sequence number of the signing key. A signature
is valid only if its sequence equals the sequence stored for the key, after
which the stored sequence is incremented.
*/
package sigs
