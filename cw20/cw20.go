package cw20

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// ExecuteMsg is the subset of the cw20 execute interface the vesting contracts emit or accept.
type ExecuteMsg struct {
	Transfer *Transfer `json:"transfer,omitempty"`
	Send     *Send     `json:"send,omitempty"`
}

type Transfer struct {
	Amount    string `json:"amount"`
	Recipient string `json:"recipient"`
}

type Send struct {
	Amount   string `json:"amount"`
	Contract string `json:"contract"`
	// Msg is base64 encoded JSON, forwarded to the receiving contract.
	Msg string `json:"msg"`
}

// ReceiveMsg is the hook a cw20 token calls on the contract receiving a Send.
type ReceiveMsg struct {
	Sender string `json:"sender"`
	Amount string `json:"amount"`
	Msg    string `json:"msg"`
}

// ReceiverExecuteMsg wraps ReceiveMsg the way it arrives at the receiving contract.
type ReceiverExecuteMsg struct {
	Receive *ReceiveMsg `json:"receive,omitempty"`
}

func (r *ExecuteMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *ReceiverExecuteMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func NewTransferMsg(recipient, amount string) ([]byte, error) {
	msg := ExecuteMsg{Transfer: &Transfer{Recipient: recipient, Amount: amount}}
	return msg.Marshal()
}

func NewReceiveMsg(sender, amount string, hook []byte) ([]byte, error) {
	msg := ReceiverExecuteMsg{Receive: &ReceiveMsg{
		Sender: sender,
		Amount: amount,
		Msg:    base64.StdEncoding.EncodeToString(hook),
	}}
	return msg.Marshal()
}

// Hook decodes the base64 payload carried by the receive message.
func (r ReceiveMsg) Hook() ([]byte, error) {
	bz, err := base64.StdEncoding.DecodeString(r.Msg)
	if err != nil {
		return nil, fmt.Errorf("invalid cw20 hook message: %w", err)
	}
	return bz, nil
}
