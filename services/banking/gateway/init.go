package gateway

import (
	"github.com/piresc/easybank/services/banking"
)

// BankingGW handles banking gateway operations
type BankingGW struct {
	nsqGateway *NSQGateway
}

// NewBankingGW creates a new gateway instance publishing emails to topic
func NewBankingGW(publisher Publisher, topic string) banking.BankingGW {
	return &BankingGW{
		nsqGateway: NewNSQGateway(publisher, topic),
	}
}
