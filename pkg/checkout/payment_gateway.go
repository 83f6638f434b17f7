package checkout

import (
	"EcoMart-Backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// PaymentGateway creates a payable transaction for an order and returns
// the token the storefront hands to the payment page.
type PaymentGateway interface {
	CreateTransaction(orderID string, grossAmount int64, email string) (string, error)
}

type midtransGateway struct {
	client snap.Client
}

func NewMidtransGateway() PaymentGateway {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	g := &midtransGateway{}
	g.client.New(utils.GetConfig("SERVER_KEY"), env)
	return g
}

func (g *midtransGateway) CreateTransaction(orderID string, grossAmount int64, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
	}

	res, err := g.client.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return res.Token, nil
}
