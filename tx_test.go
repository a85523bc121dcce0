package quorum

import (
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
)

type textMsg struct {
	text string
	err  error
}

func (m *textMsg) Marshal() ([]byte, error) { return []byte(m.text), nil }
func (m *textMsg) Unmarshal(raw []byte) error {
	m.text = string(raw)
	return nil
}
func (textMsg) Path() string       { return "test/text" }
func (m *textMsg) Validate() error { return m.err }

type otherMsg struct{ textMsg }

type msgTx struct {
	msg Msg
	err error
}

func (tx msgTx) Marshal() ([]byte, error) { return nil, nil }
func (tx *msgTx) Unmarshal([]byte) error  { return nil }
func (tx msgTx) GetMsg() (Msg, error)     { return tx.msg, tx.err }

func TestLoadMsg(t *testing.T) {
	var msg textMsg
	err := LoadMsg(&msgTx{msg: &textMsg{text: "hello"}}, &msg)
	assert.NoError(t, err)
	assert.Equal(t, "hello", msg.text)

	var ptr *textMsg
	err = LoadMsg(&msgTx{msg: &textMsg{text: "by pointer"}}, &ptr)
	assert.NoError(t, err)
	assert.Equal(t, "by pointer", ptr.text)

	err = LoadMsg(&msgTx{msg: &textMsg{err: errors.ErrEmpty}}, &msg)
	assert.True(t, errors.ErrEmpty.Is(err))

	err = LoadMsg(&msgTx{msg: &textMsg{}}, &otherMsg{})
	assert.True(t, errors.ErrInvalidType.Is(err))

	err = LoadMsg(&msgTx{msg: &textMsg{}}, msg)
	assert.True(t, errors.ErrHuman.Is(err))

	err = LoadMsg(&msgTx{}, &msg)
	assert.True(t, errors.ErrInvalidMsg.Is(err))

	err = LoadMsg(&msgTx{err: errors.ErrNotFound}, &msg)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/text", GetPath(&msgTx{msg: &textMsg{}}))
	assert.Equal(t, "(missing)", GetPath(&msgTx{}))
}
