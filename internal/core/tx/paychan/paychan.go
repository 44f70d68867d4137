// Package paychan decodes payment channel transactions.
package paychan

import "github.com/LeJamon/goXRPLkit/internal/core/tx"

// PayChannelEntryType is the ledger entry type of a payment channel.
const PayChannelEntryType = "PayChannel"

// Payment channel claim flags
const (
	// PaymentChannelClaimFlagRenew clears the channel's expiration
	PaymentChannelClaimFlagRenew uint32 = 0x00010000
	// PaymentChannelClaimFlagClose requests to close the channel
	PaymentChannelClaimFlagClose uint32 = 0x00020000
)

var (
	createFields = []string{"Destination", "DestinationTag", "Amount", "SettleDelay", "PublicKey", "CancelAfter"}
	fundFields   = []string{"Channel", "Amount", "Expiration"}
	claimFields  = []string{"Channel", "Balance", "Amount", "Signature", "PublicKey"}
)

func init() {
	tx.Register(tx.TypePaymentChannelCreate, createFields, func(base tx.BaseTransaction, o tx.Object) tx.Transaction {
		return &PaymentChannelCreate{
			BaseTransaction: base,
			destination:     o.Str("Destination"),
			destinationTag:  o.Uint32("DestinationTag"),
			amount:          o.Amount("Amount"),
			settleDelay:     o.Uint32("SettleDelay"),
			publicKey:       o.Str("PublicKey"),
			cancelAfter:     o.Uint32("CancelAfter"),
		}
	})
	tx.Register(tx.TypePaymentChannelFund, fundFields, func(base tx.BaseTransaction, o tx.Object) tx.Transaction {
		return &PaymentChannelFund{
			BaseTransaction: base,
			channel:         o.Str("Channel"),
			amount:          o.Amount("Amount"),
			expiration:      o.Uint32("Expiration"),
		}
	})
	tx.Register(tx.TypePaymentChannelClaim, claimFields, func(base tx.BaseTransaction, o tx.Object) tx.Transaction {
		return &PaymentChannelClaim{
			BaseTransaction: base,
			channel:         o.Str("Channel"),
			balance:         o.Amount("Balance"),
			amount:          o.Amount("Amount"),
			signature:       o.Str("Signature"),
			publicKey:       o.Str("PublicKey"),
		}
	})
}

// isPayChannelDeletion matches the deletion of a channel object.
func isPayChannelDeletion(n tx.AffectedNode) bool {
	return n.Kind == tx.DeletedNode && n.LedgerEntryType == PayChannelEntryType
}
