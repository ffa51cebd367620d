package model

import (
	"fmt"
	"strings"
)

// MessageType is a TP4a message type (UNH 0065). The set is closed: every
// value is listed in AllMessageTypes.
type MessageType int

const (
	MessageAUFN MessageType = iota + 1
	MessageVERL
	MessageMBEG
	MessageKHIN
	MessageKANT
	MessageRECH
	MessageENTL
	MessageAMBO
	MessageZGUT
	MessageKOUB
	MessageANFM
	MessageZAHL
	MessageZAAO
	MessageSAMU
	MessageINKA
	MessageKAIN
	MessageFEHL
)

var messageTypeCodes = map[MessageType]string{
	MessageAUFN: "AUFN",
	MessageVERL: "VERL",
	MessageMBEG: "MBEG",
	MessageKHIN: "KHIN",
	MessageKANT: "KANT",
	MessageRECH: "RECH",
	MessageENTL: "ENTL",
	MessageAMBO: "AMBO",
	MessageZGUT: "ZGUT",
	MessageKOUB: "KOUB",
	MessageANFM: "ANFM",
	MessageZAHL: "ZAHL",
	MessageZAAO: "ZAAO",
	MessageSAMU: "SAMU",
	MessageINKA: "INKA",
	MessageKAIN: "KAIN",
	MessageFEHL: "FEHL",
}

// AllMessageTypes lists the catalog in canonical order.
var AllMessageTypes = []MessageType{
	MessageAUFN, MessageVERL, MessageMBEG, MessageKHIN, MessageKANT, MessageRECH,
	MessageENTL, MessageAMBO, MessageZGUT, MessageKOUB, MessageANFM, MessageZAHL,
	MessageZAAO, MessageSAMU, MessageINKA, MessageKAIN, MessageFEHL,
}

// String returns the four-letter code.
func (t MessageType) String() string {
	if code, ok := messageTypeCodes[t]; ok {
		return code
	}
	return fmt.Sprintf("MessageType(%d)", int(t))
}

// ParseMessageType resolves a code such as "aufn" or "AUFN".
func ParseMessageType(code string) (MessageType, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, t := range AllMessageTypes {
		if messageTypeCodes[t] == code {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown message type %q", code)
}

// MessageTypeCodes returns the codes of AllMessageTypes.
func MessageTypeCodes() []string {
	codes := make([]string, len(AllMessageTypes))
	for i, t := range AllMessageTypes {
		codes[i] = t.String()
	}
	return codes
}
