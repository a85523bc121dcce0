/*
Package app wires the quorum extensions into an ABCI application.

The application routes multisig, asset and sigs messages. Proposals created
by a multisig group carry an amino encoded message of this application as
their payload. Once executed, the payload is delivered through the same
router the transactions use.
*/
package app
