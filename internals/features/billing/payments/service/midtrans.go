// file: internals/features/billing/payments/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
)

var SnapClient snap.Client

// Panggil saat bootstrap app (sandbox)
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken bikin Snap token + redirect_url untuk checkout satu invoice.
// GrossAmt = sisa yang harus dibayar (total - akumulasi paid).
func GenerateSnapToken(inv *invoiceModel.Invoice, payerName, payerEmail string) (string, string, error) {
	outstanding := inv.InvoiceTotalAmount.Sub(inv.InvoicePaidAmount)

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.InvoiceNumber,
			GrossAmt: outstanding.IntPart(),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
