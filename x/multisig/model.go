package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// GroupCondition returns the condition of a group. Its address identifies
// the group, it is never authenticated.
func GroupCondition(id []byte) quorum.Condition {
	return quorum.NewCondition("multisig", "group", id)
}

// Group is a fixed set of owners of which at least Threshold must approve a
// proposal before it can be executed. Groups are never modified.
type Group struct {
	Owners    []quorum.Address `json:"owners"`
	Threshold uint32           `json:"threshold"`
}

var _ orm.Model = (*Group)(nil)

func (g *Group) Validate() error {
	if err := validThreshold(len(g.Owners), g.Threshold); err != nil {
		return err
	}
	return validOwners(g.Owners)
}

// IsOwner returns true if the address is one of the group owners.
func (g *Group) IsOwner(a quorum.Address) bool {
	for _, o := range g.Owners {
		if o.Equals(a) {
			return true
		}
	}
	return false
}

// validThreshold requires a non empty set of owners and a threshold between
// one and the number of owners.
func validThreshold(owners int, threshold uint32) error {
	if owners == 0 {
		return errors.Wrap(ErrInvalidThreshold, "no owners")
	}
	if threshold == 0 || int64(threshold) > int64(owners) {
		return errors.Wrapf(ErrInvalidThreshold, "threshold %d for %d owners", threshold, owners)
	}
	return nil
}

func validOwners(owners []quorum.Address) error {
	for i, o := range owners {
		if err := o.Validate(); err != nil {
			return errors.Wrapf(ErrInvalidOwners, "owner %d: %s", i, err)
		}
		for _, prev := range owners[:i] {
			if o.Equals(prev) {
				return errors.Wrapf(ErrInvalidOwners, "duplicate owner %s", o)
			}
		}
	}
	return nil
}

// Proposal is an action of a group that waits for approvals. It is sealed
// once executed.
type Proposal struct {
	GroupID   []byte         `json:"group_id"`
	Proposer  quorum.Address `json:"proposer"`
	Target    string         `json:"target"`
	Payload   []byte         `json:"payload"`
	Approvals AddressSet     `json:"approvals"`
	Executed  bool           `json:"executed"`
}

var _ orm.Model = (*Proposal)(nil)

func (p *Proposal) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "GroupID", validID(p.GroupID))
	errs = errors.AppendField(errs, "Proposer", p.Proposer.Validate())
	errs = errors.AppendField(errs, "Target", validTarget(p.Target))
	if len(p.Payload) == 0 {
		errs = errors.AppendField(errs, "Payload", errors.ErrEmpty)
	}
	if p.Approvals.Len() == 0 {
		errs = errors.AppendField(errs, "Approvals", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Approvals", p.Approvals.Validate())
	}
	return errs
}

const (
	groupBucket    = "group"
	proposalBucket = "proposal"
)

// NewGroupBucket returns the bucket storing groups.
func NewGroupBucket() orm.ModelBucket {
	return orm.NewModelBucket(groupBucket, &Group{})
}

// NewProposalBucket returns the bucket storing proposals, indexed by their
// group.
func NewProposalBucket() orm.ModelBucket {
	return orm.NewModelBucket(proposalBucket, &Proposal{},
		orm.WithIndex("group", proposalGroupIndex, false))
}

func proposalGroupIndex(m orm.Model) ([][]byte, error) {
	p, ok := m.(*Proposal)
	if !ok {
		return nil, errors.WithType(errors.ErrInvalidModel, m)
	}
	return [][]byte{p.GroupID}, nil
}
