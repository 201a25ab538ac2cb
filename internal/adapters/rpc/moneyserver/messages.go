package moneyserver

import (
	"math"
	"strconv"

	"github.com/bnema/currency-gateway/internal/adapters/rpc/xmlrpc"
)

const (
	MethodClientLogin       = "ClientLogin"
	MethodClientLogout      = "ClientLogout"
	MethodGetBalance        = "GetBalance"
	MethodTransferMoney     = "TransferMoney"
	MethodPayMoneyCharge    = "PayMoneyCharge"
	MethodUpdateBalance     = "UpdateBalance"
	MethodUserAlert         = "UserAlert"
	MethodSendConfirmLink   = "SendConfirmLink"
	MethodOnMoneyTransfered = "OnMoneyTransfered"
)

const unavailableMessage = "Unable to manage your money at this time. Purchases may be unavailable"

type LoginRequest struct {
	UserServIP            string
	OpenSimServIP         string
	UserName              string
	ClientUUID            string
	ClientSessionID       string
	ClientSecureSessionID string
}

func (r LoginRequest) Params() xmlrpc.Struct {
	return xmlrpc.Struct{
		"userServIP":            r.UserServIP,
		"openSimServIP":         r.OpenSimServIP,
		"userName":              r.UserName,
		"clientUUID":            r.ClientUUID,
		"clientSessionID":       r.ClientSessionID,
		"clientSecureSessionID": r.ClientSecureSessionID,
	}
}

// ClientRequest carries the identity fields shared by ClientLogout and
// GetBalance.
type ClientRequest struct {
	UserServIP            string
	ClientUUID            string
	ClientSessionID       string
	ClientSecureSessionID string
}

func (r ClientRequest) Params() xmlrpc.Struct {
	return xmlrpc.Struct{
		"userServIP":            r.UserServIP,
		"clientUUID":            r.ClientUUID,
		"clientSessionID":       r.ClientSessionID,
		"clientSecureSessionID": r.ClientSecureSessionID,
	}
}

type TransferRequest struct {
	SenderUserServIP      string
	SenderID              string
	ReceiverUserServIP    string
	ReceiverID            string
	SenderSessionID       string
	SenderSecureSessionID string
	TransactionType       int32
	LocalID               string
	RegionHandle          uint64
	Amount                int32
	Description           string
}

func (r TransferRequest) Params() xmlrpc.Struct {
	return xmlrpc.Struct{
		"senderUserServIP":      r.SenderUserServIP,
		"senderID":              r.SenderID,
		"receiverUserServIP":    r.ReceiverUserServIP,
		"receiverID":            r.ReceiverID,
		"senderSessionID":       r.SenderSessionID,
		"senderSecureSessionID": r.SenderSecureSessionID,
		"transactionType":       r.TransactionType,
		"localID":               r.LocalID,
		"regionHandle":          strconv.FormatUint(r.RegionHandle, 10),
		"amount":                r.Amount,
		"description":           r.Description,
	}
}

type ChargeRequest struct {
	SenderID              string
	SenderSessionID       string
	SenderSecureSessionID string
	TransactionType       int32
	Amount                int32
	RegionHandle          uint64
	Description           string
}

func (r ChargeRequest) Params() xmlrpc.Struct {
	return xmlrpc.Struct{
		"senderID":              r.SenderID,
		"senderSessionID":       r.SenderSessionID,
		"senderSecureSessionID": r.SenderSecureSessionID,
		"transactionType":       r.TransactionType,
		"amount":                r.Amount,
		"regionHandle":          strconv.FormatUint(r.RegionHandle, 10),
		"description":           r.Description,
	}
}

// Reply is a money server answer. Anything other than a struct carrying
// success=true is reported as a failed reply.
type Reply struct {
	fields xmlrpc.Struct
}

func NewReply(fields xmlrpc.Struct) Reply {
	return Reply{fields: fields}
}

func failedReply(message string) Reply {
	return Reply{fields: xmlrpc.Struct{
		"success":      false,
		"errorMessage": message,
		"errorURI":     "",
	}}
}

func (r Reply) Success() bool {
	ok, _ := r.fields.Bool("success")
	return ok
}

func (r Reply) ClientBalance() (int32, bool) {
	return Amount(r.fields, "clientBalance")
}

// Amount reads a balance or amount member. Values outside 0..MaxInt32 are
// reported as missing.
func Amount(fields xmlrpc.Struct, key string) (int32, bool) {
	n, ok := fields.Int(key)
	if !ok || n < 0 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}

func (r Reply) ErrorMessage() string {
	msg, _ := r.fields.String("errorMessage")
	return msg
}

func (r Reply) ErrorURI() string {
	uri, _ := r.fields.String("errorURI")
	return uri
}

func (r Reply) Fields() xmlrpc.Struct {
	return r.fields
}
