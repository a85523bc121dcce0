package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// ResultSet holds 0 to N values returned by a query. Keys and values of a
// query response are each serialized as a ResultSet.
type ResultSet struct {
	Results [][]byte
}

// resultSetMessage is the protobuf representation of a ResultSet.
type resultSetMessage struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *resultSetMessage) Reset()         { *m = resultSetMessage{} }
func (m *resultSetMessage) String() string { return proto.CompactTextString(m) }
func (*resultSetMessage) ProtoMessage()    {}

func (r *ResultSet) Marshal() ([]byte, error) {
	return proto.Marshal(&resultSetMessage{Results: r.Results})
}

func (r *ResultSet) Unmarshal(raw []byte) error {
	var m resultSetMessage
	if err := proto.Unmarshal(raw, &m); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	r.Results = m.Results
	return nil
}

// ResultsFromKeys returns a ResultSet of all keys of the models.
func ResultsFromKeys(models []quorum.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values of the models.
func ResultsFromValues(models []quorum.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues.
func JoinResults(keys, values *ResultSet) ([]quorum.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrInvalidState, "%d keys and %d values", len(kref), len(vref))
	}
	mods := make([]quorum.Model, len(kref))
	for i := range mods {
		mods[i] = quorum.Pair(kref[i], vref[i])
	}
	return mods, nil
}

// UnmarshalOneResult parses a serialized ResultSet and, if it is not empty,
// unmarshals the first result into o. It returns ErrNotFound for an empty
// result set.
func UnmarshalOneResult(raw []byte, o quorum.Persistent) error {
	var res ResultSet
	if err := res.Unmarshal(raw); err != nil {
		return err
	}
	if len(res.Results) == 0 {
		return errors.ErrNotFound
	}
	return o.Unmarshal(res.Results[0])
}
