package multisig

import (
	"bytes"
	"fmt"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	creationCost int64 = 10
	proposeCost  int64 = 5
	approveCost  int64 = 1
	executeCost  int64 = 10

	// TagGroup and TagProposal are the keys of the deliver result tags.
	TagGroup    = "multisig.group"
	TagProposal = "multisig.proposal"
	// TagGroupAddress is set when a group is created.
	TagGroupAddress = "multisig.group_address"
)

// RegisterRoutes registers all handlers of this package. Executed proposals
// are decoded with decode and delivered with exec.
func RegisterRoutes(r quorum.Registry, auth x.Authenticator, decode PayloadDecoder, exec Executor) {
	groups := NewGroupBucket()
	proposals := NewProposalBucket()
	r.Handle(pathCreateGroupMsg, createGroupHandler{auth: auth, groups: groups})
	r.Handle(pathProposeMsg, proposeHandler{auth: auth, groups: groups, proposals: proposals})
	r.Handle(pathApproveMsg, approveHandler{auth: auth, groups: groups, proposals: proposals})
	r.Handle(pathExecuteMsg, executeHandler{
		groups:    groups,
		proposals: proposals,
		decode:    decode,
		exec:      exec,
	})
}

// RegisterQuery registers the buckets of this package as "/groups" and
// "/proposals".
func RegisterQuery(qr quorum.QueryRouter) {
	NewGroupBucket().Register("groups", qr)
	NewProposalBucket().Register("proposals", qr)
}

func idTag(key string, id []byte) common.KVPair {
	return quorum.Tag(key, []byte(fmt.Sprintf("%X", id)))
}

// signerAddress returns the declared address or the main signer address if
// none was declared. The address must have signed the transaction.
func signerAddress(ctx quorum.Context, auth x.Authenticator, declared quorum.Address) (quorum.Address, error) {
	if len(declared) == 0 {
		main := x.MainSigner(ctx, auth)
		if main == nil {
			return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
		}
		return main.Address(), nil
	}
	if !auth.HasAddress(ctx, declared) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s did not sign", declared)
	}
	return declared, nil
}

type createGroupHandler struct {
	auth   x.Authenticator
	groups orm.ModelBucket
}

var _ quorum.Handler = createGroupHandler{}

func (h createGroupHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: creationCost}, nil
}

func (h createGroupHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	group := &Group{
		Owners:    msg.Owners,
		Threshold: msg.Threshold,
	}
	id, err := h.groups.Put(db, nil, group)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store group")
	}
	return &quorum.DeliverResult{
		Data: id,
		Tags: []common.KVPair{
			idTag(TagGroup, id),
			idTag(TagGroupAddress, GroupCondition(id).Address()),
		},
	}, nil
}

func (h createGroupHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*CreateGroupMsg, error) {
	var msg CreateGroupMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if n := len(msg.Owners); n > int(conf.MaxOwners) {
		return nil, errors.Wrapf(ErrInvalidThreshold, "%d owners, at most %d allowed", n, conf.MaxOwners)
	}
	return &msg, nil
}

type proposeHandler struct {
	auth      x.Authenticator
	groups    orm.ModelBucket
	proposals orm.ModelBucket
}

var _ quorum.Handler = proposeHandler{}

func (h proposeHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: proposeCost}, nil
}

func (h proposeHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, group, proposer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	approvals := NewAddressSet(len(group.Owners))
	if err := approvals.Add(proposer); err != nil {
		return nil, err
	}
	proposal := &Proposal{
		GroupID:   msg.GroupID,
		Proposer:  proposer,
		Target:    msg.Target,
		Payload:   msg.Payload,
		Approvals: approvals,
	}
	id, err := h.proposals.Put(db, nil, proposal)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store proposal")
	}
	return &quorum.DeliverResult{
		Data: id,
		Tags: []common.KVPair{
			idTag(TagGroup, msg.GroupID),
			idTag(TagProposal, id),
		},
	}, nil
}

func (h proposeHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*ProposeMsg, *Group, quorum.Address, error) {
	var msg ProposeMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	proposer, err := signerAddress(ctx, h.auth, msg.Proposer)
	if err != nil {
		return nil, nil, nil, err
	}
	var group Group
	if err := h.groups.One(db, msg.GroupID, &group); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load group")
	}
	if !group.IsOwner(proposer) {
		return nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", proposer)
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if n := len(msg.Payload); n > int(conf.MaxPayloadLen) {
		return nil, nil, nil, errors.Wrapf(errors.ErrInvalidInput, "payload of %d bytes, at most %d allowed", n, conf.MaxPayloadLen)
	}
	return &msg, &group, proposer, nil
}

type approveHandler struct {
	auth      x.Authenticator
	groups    orm.ModelBucket
	proposals orm.ModelBucket
}

var _ quorum.Handler = approveHandler{}

func (h approveHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: approveCost}, nil
}

func (h approveHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, proposal, approver, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res := &quorum.DeliverResult{
		Tags: []common.KVPair{
			idTag(TagGroup, proposal.GroupID),
			idTag(TagProposal, msg.ProposalID),
		},
	}
	if proposal.Approvals.Contains(approver) {
		res.Log = "already approved"
		return res, nil
	}
	if err := proposal.Approvals.Add(approver); err != nil {
		return nil, errors.Wrap(err, "cannot approve")
	}
	if _, err := h.proposals.Put(db, msg.ProposalID, proposal); err != nil {
		return nil, errors.Wrap(err, "cannot store proposal")
	}
	return res, nil
}

func (h approveHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*ApproveMsg, *Proposal, quorum.Address, error) {
	var msg ApproveMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	approver, err := signerAddress(ctx, h.auth, msg.Approver)
	if err != nil {
		return nil, nil, nil, err
	}
	var proposal Proposal
	if err := h.proposals.One(db, msg.ProposalID, &proposal); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load proposal")
	}
	var group Group
	if err := h.groups.One(db, proposal.GroupID, &group); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load group")
	}
	if !group.IsOwner(approver) {
		return nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", approver)
	}
	if proposal.Executed {
		return nil, nil, nil, errors.Wrap(ErrAlreadyExecuted, "cannot approve")
	}
	return &msg, &proposal, approver, nil
}

type executeHandler struct {
	groups    orm.ModelBucket
	proposals orm.ModelBucket
	decode    PayloadDecoder
	exec      Executor
}

var _ quorum.Handler = executeHandler{}

// Check validates the preconditions of the execution and decodes the
// action. The action is never dispatched.
func (h executeHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	msg, proposal, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := decodeAction(h.decode, proposal); err != nil {
		return nil, errors.Append(errors.Wrapf(ErrDispatch, "proposal %X", msg.ProposalID), err)
	}
	return &quorum.CheckResult{GasAllocated: executeCost}, nil
}

func (h executeHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, proposal, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	res, err := h.dispatch(ctx, db, msg, proposal)
	if err != nil {
		return nil, errors.Append(errors.Wrapf(ErrDispatch, "proposal %X", msg.ProposalID), err)
	}

	// The dispatched action may have modified the proposal.
	var sealed Proposal
	if err := h.proposals.One(db, msg.ProposalID, &sealed); err != nil {
		return nil, errors.Wrap(err, "cannot reload proposal")
	}
	sealed.Executed = true
	if _, err := h.proposals.Put(db, msg.ProposalID, &sealed); err != nil {
		return nil, errors.Wrap(err, "cannot store proposal")
	}

	res.Tags = append(res.Tags,
		idTag(TagGroup, proposal.GroupID),
		idTag(TagProposal, msg.ProposalID),
	)
	return res, nil
}

// dispatch delivers the proposal action in an isolated cache, which is
// written only on success.
func (h executeHandler) dispatch(ctx quorum.Context, db quorum.KVStore, msg *ExecuteMsg, p *Proposal) (*quorum.DeliverResult, error) {
	if isExecuting(ctx, msg.ProposalID) {
		return nil, errors.Wrap(errors.ErrInvalidState, "proposal execution in progress")
	}
	action, err := decodeAction(h.decode, p)
	if err != nil {
		return nil, err
	}

	ctx = withExecuting(ctx, msg.ProposalID)
	ctx = x.WithAccounts(ctx, msg.Accounts)
	ctx = quorum.WithLogInfo(ctx, "proposal", fmt.Sprintf("%X", msg.ProposalID), "target", p.Target)

	var cache quorum.KVCacheWrap
	if c, ok := db.(quorum.CacheableKVStore); ok {
		cache = c.CacheWrap()
	} else {
		cache = store.NewBTreeCacheWrap(db, nil)
	}

	res, err := h.exec(ctx, cache, action)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot write dispatch result")
	}
	if res == nil {
		res = &quorum.DeliverResult{}
	}
	return res, nil
}

func (h executeHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*ExecuteMsg, *Proposal, error) {
	var msg ExecuteMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var proposal Proposal
	if err := h.proposals.One(db, msg.ProposalID, &proposal); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load proposal")
	}
	if !bytes.Equal(msg.GroupID, proposal.GroupID) {
		return nil, nil, errors.Wrapf(ErrGroupMismatch, "proposal belongs to group %X", proposal.GroupID)
	}
	if proposal.Executed {
		return nil, nil, errors.Wrap(ErrAlreadyExecuted, "cannot execute")
	}
	var group Group
	if err := h.groups.One(db, proposal.GroupID, &group); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load group")
	}
	if n := proposal.Approvals.Len(); n < int(group.Threshold) {
		return nil, nil, errors.Wrapf(ErrNotEnoughApprovals, "%d of %d", n, group.Threshold)
	}
	return &msg, &proposal, nil
}
