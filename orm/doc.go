/*
Package orm provides typed access to the key value store.

A ModelBucket stores models of a single type under a common key prefix. A
primary key can be given explicitly or generated from the bucket sequence.
Secondary indexes are maintained on every write and can be used to list all
models that share an index value.
*/
package orm
