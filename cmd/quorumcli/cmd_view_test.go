package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestCmdTransactionViewOfProposal(t *testing.T) {
	var metadata bytes.Buffer
	args := []string{"-asset", "1", "-name", "Gold", "-symbol", "GLD"}
	if err := cmdAttachMetadata(nil, &metadata, args); err != nil {
		t.Fatalf("cannot create transaction: %s", err)
	}
	var proposal bytes.Buffer
	if err := cmdPropose(&metadata, &proposal, []string{"-group", "1"}); err != nil {
		t.Fatalf("cannot create proposal: %s", err)
	}

	var output bytes.Buffer
	if err := cmdTransactionView(&proposal, &output, nil); err != nil {
		t.Fatalf("cannot view: %s", err)
	}

	var view struct {
		Path   string `json:"path"`
		Action struct {
			Path string `json:"path"`
			Msg  struct {
				Name string `json:"name"`
			} `json:"msg"`
		} `json:"action"`
	}
	if err := json.Unmarshal(output.Bytes(), &view); err != nil {
		t.Fatalf("cannot decode view: %s\n%s", err, output.String())
	}
	assert.Equal(t, "multisig/propose", view.Path)
	assert.Equal(t, "asset/attach_metadata", view.Action.Path)
	assert.Equal(t, "Gold", view.Action.Msg.Name)
}
