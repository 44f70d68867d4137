package payment

import (
	"encoding/json"

	"github.com/LeJamon/goXRPLkit/internal/core/tx"
)

// Payment flags
const (
	// PaymentFlagNoDirectRipple disables the default path
	PaymentFlagNoDirectRipple uint32 = 0x00010000
	// PaymentFlagPartialPayment lets the delivered amount fall short of Amount
	PaymentFlagPartialPayment uint32 = 0x00020000
	// PaymentFlagLimitQuality restricts paths to the SendMax/Amount quality
	PaymentFlagLimitQuality uint32 = 0x00040000
)

var fields = []string{"Destination", "DestinationTag", "Amount", "SendMax", "DeliverMin", "InvoiceID", "Paths"}

func init() {
	tx.Register(tx.TypePayment, fields, func(base tx.BaseTransaction, o tx.Object) tx.Transaction {
		p := &Payment{
			BaseTransaction: base,
			destination:     o.Str("Destination"),
			destinationTag:  o.Uint32("DestinationTag"),
			amount:          o.Amount("Amount"),
			sendMax:         o.Amount("SendMax"),
			deliverMin:      o.Amount("DeliverMin"),
			invoiceID:       o.Str("InvoiceID"),
			paths:           o.Raw("Paths"),
		}
		// API v2 renames Amount to DeliverMax.
		if p.amount == nil {
			p.amount = o.Amount("DeliverMax")
		}
		return p
	})
}

// Payment transfers value from one account to another.
type Payment struct {
	tx.BaseTransaction

	destination    *string
	destinationTag *uint32
	amount         *tx.Amount
	sendMax        *tx.Amount
	deliverMin     *tx.Amount
	invoiceID      *string
	paths          json.RawMessage
}

// NewPayment decodes a Payment from raw ledger JSON.
func NewPayment(raw, meta []byte) *Payment {
	return tx.New(tx.TypePayment, raw, meta).(*Payment)
}

func (p *Payment) Destination() (string, bool)    { return tx.Get(p.destination) }
func (p *Payment) DestinationTag() (uint32, bool) { return tx.Get(p.destinationTag) }
func (p *Payment) Amount() (tx.Amount, bool)      { return tx.Get(p.amount) }
func (p *Payment) SendMax() (tx.Amount, bool)     { return tx.Get(p.sendMax) }
func (p *Payment) DeliverMin() (tx.Amount, bool)  { return tx.Get(p.deliverMin) }
func (p *Payment) InvoiceID() (string, bool)      { return tx.Get(p.invoiceID) }

// Paths returns the raw path set.
func (p *Payment) Paths() (json.RawMessage, bool) {
	return p.paths, p.paths != nil
}

// IsPartialPayment reports whether tfPartialPayment is set.
func (p *Payment) IsPartialPayment() bool {
	return p.Common().HasFlag(PaymentFlagPartialPayment)
}

// DeliveredAmount returns the amount actually received by the destination,
// as recorded in metadata.
func (p *Payment) DeliveredAmount() (tx.Amount, bool) {
	if m := p.Meta(); m != nil {
		return tx.Get(m.DeliveredAmount)
	}
	return tx.Amount{}, false
}

func (p *Payment) Field(name string) (any, bool) {
	switch name {
	case "Destination":
		return tx.Opt(p.destination)
	case "DestinationTag":
		return tx.Opt(p.destinationTag)
	case "Amount":
		return tx.Opt(p.amount)
	case "SendMax":
		return tx.Opt(p.sendMax)
	case "DeliverMin":
		return tx.Opt(p.deliverMin)
	case "InvoiceID":
		return tx.Opt(p.invoiceID)
	case "Paths":
		return p.Paths()
	}
	return p.BaseTransaction.Field(name)
}

func (p *Payment) Derived() map[string]any {
	out := map[string]any{"IsPartialPayment": p.IsPartialPayment()}
	if a, ok := p.DeliveredAmount(); ok {
		out["DeliveredAmount"] = a
	}
	return out
}
