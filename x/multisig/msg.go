package multisig

import (
	"regexp"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const (
	pathCreateGroupMsg = "multisig/create_group"
	pathProposeMsg     = "multisig/propose"
	pathApproveMsg     = "multisig/approve"
	pathExecuteMsg     = "multisig/execute"
)

var isRoutePath = regexp.MustCompile(`^[a-z][a-z0-9_]*(/[a-z][a-z0-9_]*)+$`).MatchString

func validTarget(target string) error {
	if !isRoutePath(target) {
		return errors.Wrapf(errors.ErrInvalidInput, "target %q is not a route path", target)
	}
	return nil
}

// validID checks a sequence generated key.
func validID(id []byte) error {
	if len(id) == 0 {
		return errors.ErrEmpty
	}
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInvalidInput, "id must be 8 bytes, got %d", len(id))
	}
	return nil
}

// validOptionalAddress accepts an empty address.
func validOptionalAddress(a quorum.Address) error {
	if len(a) == 0 {
		return nil
	}
	return a.Validate()
}

// CreateGroupMsg registers a new group. The ID of the group is returned.
type CreateGroupMsg struct {
	Owners    []quorum.Address `json:"owners"`
	Threshold uint32           `json:"threshold"`
}

var _ quorum.Msg = (*CreateGroupMsg)(nil)

func (CreateGroupMsg) Path() string {
	return pathCreateGroupMsg
}

func (m *CreateGroupMsg) Validate() error {
	if err := validThreshold(len(m.Owners), m.Threshold); err != nil {
		return errors.Field("Threshold", err, "")
	}
	if err := validOwners(m.Owners); err != nil {
		return errors.Field("Owners", err, "")
	}
	return nil
}

// ProposeMsg creates a proposal of a group. Proposer defaults to the main
// signer of the transaction.
type ProposeMsg struct {
	GroupID  []byte         `json:"group_id"`
	Proposer quorum.Address `json:"proposer,omitempty"`
	// Target is the path of the message serialized in Payload.
	Target  string `json:"target"`
	Payload []byte `json:"payload"`
}

var _ quorum.Msg = (*ProposeMsg)(nil)

func (ProposeMsg) Path() string {
	return pathProposeMsg
}

func (m *ProposeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "GroupID", validID(m.GroupID))
	errs = errors.AppendField(errs, "Proposer", validOptionalAddress(m.Proposer))
	errs = errors.AppendField(errs, "Target", validTarget(m.Target))
	if len(m.Payload) == 0 {
		errs = errors.AppendField(errs, "Payload", errors.ErrEmpty)
	}
	return errs
}

// ApproveMsg adds an approval to a proposal. Approver defaults to the main
// signer of the transaction.
type ApproveMsg struct {
	ProposalID []byte         `json:"proposal_id"`
	Approver   quorum.Address `json:"approver,omitempty"`
}

var _ quorum.Msg = (*ApproveMsg)(nil)

func (ApproveMsg) Path() string {
	return pathApproveMsg
}

func (m *ApproveMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "ProposalID", validID(m.ProposalID))
	errs = errors.AppendField(errs, "Approver", validOptionalAddress(m.Approver))
	return errs
}

// ExecuteMsg dispatches the action of an approved proposal. GroupID must be
// the group of the proposal. Accounts are the addresses the dispatched
// message is allowed to operate on.
type ExecuteMsg struct {
	ProposalID []byte           `json:"proposal_id"`
	GroupID    []byte           `json:"group_id"`
	Accounts   []quorum.Address `json:"accounts,omitempty"`
}

var _ quorum.Msg = (*ExecuteMsg)(nil)

func (ExecuteMsg) Path() string {
	return pathExecuteMsg
}

func (m *ExecuteMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "ProposalID", validID(m.ProposalID))
	errs = errors.AppendField(errs, "GroupID", validID(m.GroupID))
	for _, a := range m.Accounts {
		errs = errors.AppendField(errs, "Accounts", a.Validate())
	}
	return errs
}
