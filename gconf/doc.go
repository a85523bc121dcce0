/*
Package gconf stores extension configuration on chain.

Each extension keeps a single configuration object under the key

	_c:<package name>

The object is loaded from the "conf" section of the genesis file, for
example

	"conf": {
		"multisig": {"max_owners": 10, "max_payload_len": 100}
	}
*/
package gconf
