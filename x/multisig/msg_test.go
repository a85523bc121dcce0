package multisig

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestMsgValidate(t *testing.T) {
	a := quorumtest.NewCondition().Address()
	id := quorumtest.SequenceID(1)

	cases := map[string]struct {
		msg        quorum.Msg
		wantErrs   map[string]*errors.Error
		wantAnyErr *errors.Error
	}{
		"valid create group": {
			msg: &CreateGroupMsg{Owners: []quorum.Address{a}, Threshold: 1},
		},
		"create group with invalid threshold": {
			msg:      &CreateGroupMsg{Owners: []quorum.Address{a}, Threshold: 2},
			wantErrs: map[string]*errors.Error{"Threshold": ErrInvalidThreshold, "Owners": nil},
		},
		"create group with duplicated owners": {
			msg:      &CreateGroupMsg{Owners: []quorum.Address{a, a}, Threshold: 2},
			wantErrs: map[string]*errors.Error{"Threshold": nil, "Owners": ErrInvalidOwners},
		},
		"valid propose": {
			msg: &ProposeMsg{GroupID: id, Target: "asset/mint", Payload: []byte{1}},
		},
		"propose with all fields": {
			msg: &ProposeMsg{GroupID: id, Proposer: a, Target: "multisig/create_group", Payload: []byte{1}},
		},
		"propose with invalid fields": {
			msg: &ProposeMsg{Proposer: []byte{1}, Target: "/mint"},
			wantErrs: map[string]*errors.Error{
				"GroupID":  errors.ErrEmpty,
				"Proposer": errors.ErrInvalidInput,
				"Target":   errors.ErrInvalidInput,
				"Payload":  errors.ErrEmpty,
			},
		},
		"valid approve": {
			msg: &ApproveMsg{ProposalID: id},
		},
		"approve with invalid fields": {
			msg: &ApproveMsg{ProposalID: []byte("too long to be an id"), Approver: []byte{1}},
			wantErrs: map[string]*errors.Error{
				"ProposalID": errors.ErrInvalidInput,
				"Approver":   errors.ErrInvalidInput,
			},
		},
		"valid execute": {
			msg: &ExecuteMsg{ProposalID: id, GroupID: id, Accounts: []quorum.Address{a}},
		},
		"execute with invalid fields": {
			msg: &ExecuteMsg{ProposalID: id, Accounts: []quorum.Address{a, {1}}},
			wantErrs: map[string]*errors.Error{
				"ProposalID": nil,
				"GroupID":    errors.ErrEmpty,
				"Accounts":   errors.ErrInvalidInput,
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.Validate()
			if len(tc.wantErrs) == 0 {
				assert.Nil(t, err)
				return
			}
			for field, want := range tc.wantErrs {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestMsgPersistence(t *testing.T) {
	msg := ProposeMsg{
		GroupID:  quorumtest.SequenceID(3),
		Proposer: quorumtest.NewCondition().Address(),
		Target:   "asset/mint",
		Payload:  []byte("serialized"),
	}
	raw, err := msg.Marshal()
	assert.Nil(t, err)
	var got ProposeMsg
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, msg, got)
}
