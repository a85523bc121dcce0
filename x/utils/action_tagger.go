package utils

import (
	"github.com/iov-one/quorum"
)

// ActionKey is the key of the tag appended by ActionTagger.
const ActionKey = "action"

// ActionTagger adds a tag `action = msg.Path()` to every successful deliver
// result, so that clients can search or subscribe to a kind of message.
type ActionTagger struct{}

var _ quorum.Decorator = ActionTagger{}

// NewActionTagger creates an ActionTagger decorator.
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check just passes the request along.
func (ActionTagger) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx, next quorum.Checker) (*quorum.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends a tag on the result if there is a success.
func (ActionTagger) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx, next quorum.Deliverer) (*quorum.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, quorum.Tag(ActionKey, []byte(msg.Path())))
	return res, nil
}
