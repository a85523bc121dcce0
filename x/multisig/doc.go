/*
Package multisig implements multi party approval with deferred execution.

A group is a fixed set of owners with a threshold. Any owner can propose an
action for the group: a message path and its serialized form. Owners approve
the proposal, and once the number of distinct approvals reaches the
threshold, anybody can execute it. Execution dispatches the decoded message
to the application router exactly once.

	create_group -> propose -> approve (n times) -> execute

The group does not grant any authority to the executed message. It runs with
the authority of whoever signed the execute transaction.
*/
package multisig
