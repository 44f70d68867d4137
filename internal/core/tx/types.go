package tx

import "fmt"

// Type represents a transaction type code
type Type uint16

// RippleEpoch is the unix time of the ledger's time origin (2000-01-01).
const RippleEpoch int64 = 946684800

// Transaction type codes. XRPL kinds carry their rippled code; hook-network
// kinds carry the code used on those networks.
const (
	TypeUnknown Type = 0xFFFF // Not decodable by any registered variant

	TypePayment              Type = 0  // ttPAYMENT
	TypeEscrowCreate         Type = 1  // ttESCROW_CREATE
	TypeEscrowFinish         Type = 2  // ttESCROW_FINISH
	TypeAccountSet           Type = 3  // ttACCOUNT_SET
	TypeEscrowCancel         Type = 4  // ttESCROW_CANCEL
	TypeRegularKeySet        Type = 5  // ttREGULAR_KEY_SET
	TypeOfferCreate          Type = 7  // ttOFFER_CREATE
	TypeOfferCancel          Type = 8  // ttOFFER_CANCEL
	TypeTicketCreate         Type = 10 // ttTICKET_CREATE
	TypeSignerListSet        Type = 12 // ttSIGNER_LIST_SET
	TypePaymentChannelCreate Type = 13 // ttPAYCHAN_CREATE
	TypePaymentChannelFund   Type = 14 // ttPAYCHAN_FUND
	TypePaymentChannelClaim  Type = 15 // ttPAYCHAN_CLAIM
	TypeCheckCreate          Type = 16 // ttCHECK_CREATE
	TypeCheckCash            Type = 17 // ttCHECK_CASH
	TypeCheckCancel          Type = 18 // ttCHECK_CANCEL
	TypeDepositPreauth       Type = 19 // ttDEPOSIT_PREAUTH
	TypeTrustSet             Type = 20 // ttTRUST_SET
	TypeAccountDelete        Type = 21 // ttACCOUNT_DELETE
	TypeSetHook              Type = 22 // ttHOOK_SET
	TypeNFTokenMint          Type = 25 // ttNFTOKEN_MINT
	TypeNFTokenBurn          Type = 26 // ttNFTOKEN_BURN
	TypeNFTokenCreateOffer   Type = 27 // ttNFTOKEN_CREATE_OFFER
	TypeNFTokenCancelOffer   Type = 28 // ttNFTOKEN_CANCEL_OFFER
	TypeNFTokenAcceptOffer   Type = 29 // ttNFTOKEN_ACCEPT_OFFER

	// Hook network (Xahau) kinds. Their codes overlap the XChain range on
	// XRPL mainnet, which this package does not model.
	TypeURITokenMint            Type = 45 // ttURITOKEN_MINT
	TypeURITokenBurn            Type = 46 // ttURITOKEN_BURN
	TypeURITokenBuy             Type = 47 // ttURITOKEN_BUY
	TypeURITokenCreateSellOffer Type = 48 // ttURITOKEN_CREATE_SELL_OFFER
	TypeURITokenCancelSellOffer Type = 49 // ttURITOKEN_CANCEL_SELL_OFFER
)

// typeNameMap maps transaction type names to their codes
var typeNameMap = map[string]Type{
	"Payment":                 TypePayment,
	"EscrowCreate":            TypeEscrowCreate,
	"EscrowFinish":            TypeEscrowFinish,
	"AccountSet":              TypeAccountSet,
	"EscrowCancel":            TypeEscrowCancel,
	"SetRegularKey":           TypeRegularKeySet,
	"OfferCreate":             TypeOfferCreate,
	"OfferCancel":             TypeOfferCancel,
	"TicketCreate":            TypeTicketCreate,
	"SignerListSet":           TypeSignerListSet,
	"PaymentChannelCreate":    TypePaymentChannelCreate,
	"PaymentChannelFund":      TypePaymentChannelFund,
	"PaymentChannelClaim":     TypePaymentChannelClaim,
	"CheckCreate":             TypeCheckCreate,
	"CheckCash":               TypeCheckCash,
	"CheckCancel":             TypeCheckCancel,
	"DepositPreauth":          TypeDepositPreauth,
	"TrustSet":                TypeTrustSet,
	"AccountDelete":           TypeAccountDelete,
	"SetHook":                 TypeSetHook,
	"NFTokenMint":             TypeNFTokenMint,
	"NFTokenBurn":             TypeNFTokenBurn,
	"NFTokenCreateOffer":      TypeNFTokenCreateOffer,
	"NFTokenCancelOffer":      TypeNFTokenCancelOffer,
	"NFTokenAcceptOffer":      TypeNFTokenAcceptOffer,
	"URITokenMint":            TypeURITokenMint,
	"URITokenBurn":            TypeURITokenBurn,
	"URITokenBuy":             TypeURITokenBuy,
	"URITokenCreateSellOffer": TypeURITokenCreateSellOffer,
	"URITokenCancelSellOffer": TypeURITokenCancelSellOffer,
}

var typeNames = func() map[Type]string {
	m := make(map[Type]string, len(typeNameMap))
	for name, t := range typeNameMap {
		m[t] = name
	}
	return m
}()

// String returns the string name of the transaction type
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	if t == TypeUnknown {
		return "Unknown"
	}
	return fmt.Sprintf("Type(%d)", uint16(t))
}

// TypeFromName returns the Type for a transaction type name
func TypeFromName(name string) (Type, bool) {
	t, ok := typeNameMap[name]
	return t, ok
}
