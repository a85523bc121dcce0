package sigs

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x"
)

// RegisterRoutes registers the handlers of this extension.
func RegisterRoutes(r quorum.Registry, auth x.Authenticator) {
	r.Handle(pathBumpSequenceMsg, &bumpSequenceHandler{
		b:    NewBucket(),
		auth: auth,
	})
}

type bumpSequenceHandler struct {
	auth x.Authenticator
	b    Bucket
}

func (h *bumpSequenceHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{}, nil
}

func (h *bumpSequenceHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	user, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Processing the transaction already incremented the sequence by one.
	incr := int64(msg.Increment) - 1
	if incr == 0 {
		return &quorum.DeliverResult{}, nil
	}
	user.Sequence += incr
	if err := h.b.Save(db, user); err != nil {
		return nil, errors.Wrap(err, "save user")
	}
	return &quorum.DeliverResult{}, nil
}

func (h *bumpSequenceHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*UserData, *BumpSequenceMsg, error) {
	var msg BumpSequenceMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	var user UserData
	if err := h.b.One(db, signer.Address(), &user); err != nil {
		return nil, nil, errors.Wrap(err, "no sequence")
	}
	if next := user.Sequence + int64(msg.Increment); next < user.Sequence || next > maxSequenceValue {
		return nil, nil, errors.Wrap(errors.ErrOverflow, "user sequence")
	}
	return &user, &msg, nil
}
