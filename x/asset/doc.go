/*
Package asset implements a registry of fungible assets.

An asset is created with a number of decimal places and an authority. Only
the authority can attach the descriptive metadata and mint new units into a
holding. Holdings are created on demand, the first time an amount is minted
for a destination.

When a message is dispatched by an executed proposal, the accounts provided
with the execution restrict the destinations a mint can credit.
*/
package asset
