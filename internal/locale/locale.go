// Package locale holds the human readable strings used to describe
// transactions, keyed by message id and rendered through an x/text catalog.
package locale

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message ids.
const (
	KeyMintNFT                     = "events.mintNFT"
	KeyTheTokenIDIs                = "events.theTokenIdIs"
	KeyTheTokenHasATransferFee     = "events.theTokenHasATransferFee"
	KeyTheTokenHasNoTransferFee    = "events.theTokenHasNoTransferFee"
	KeyTheTokenTaxonIs             = "events.theTokenTaxonForThisTokenIs"
	KeyClaimPaymentChannel         = "events.claimPaymentChannel"
	KeyTheChannelIDIs              = "events.theChannelIdIs"
	KeyTheClaimBalanceIs           = "events.theClaimBalanceIs"
	KeyTheChannelWasClosed         = "events.theChannelWasClosed"
	KeyTheChannelCloseWasRequested = "events.theChannelCloseWasRequested"
	KeyBurnURIToken                = "events.burnURIToken"
	KeyTheURITokenIDIs             = "events.theURITokenIdIs"
)

// supported lists the catalog languages; the first is the fallback.
var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

var messages = map[language.Tag]map[string]string{
	language.English: {
		KeyMintNFT:                     "Mint NFT",
		KeyTheTokenIDIs:                "The token ID is %s",
		KeyTheTokenHasATransferFee:     "The token has a transfer fee of %s%%",
		KeyTheTokenHasNoTransferFee:    "The token has no transfer fee",
		KeyTheTokenTaxonIs:             "The token taxon for this token is %s",
		KeyClaimPaymentChannel:         "Claim payment channel",
		KeyTheChannelIDIs:              "The channel ID is %s",
		KeyTheClaimBalanceIs:           "The claimed balance is %s %s",
		KeyTheChannelWasClosed:         "The payment channel was closed",
		KeyTheChannelCloseWasRequested: "Closing the payment channel was requested",
		KeyBurnURIToken:                "Burn URI token",
		KeyTheURITokenIDIs:             "The URI token ID is %s",
	},
	language.Spanish: {
		KeyMintNFT:                     "Acuñar NFT",
		KeyTheTokenIDIs:                "El ID del token es %s",
		KeyTheTokenHasATransferFee:     "El token tiene una comisión de transferencia del %s%%",
		KeyTheTokenHasNoTransferFee:    "El token no tiene comisión de transferencia",
		KeyTheTokenTaxonIs:             "El taxón de este token es %s",
		KeyClaimPaymentChannel:         "Reclamar canal de pago",
		KeyTheChannelIDIs:              "El ID del canal es %s",
		KeyTheClaimBalanceIs:           "El saldo reclamado es %s %s",
		KeyTheChannelWasClosed:         "El canal de pago fue cerrado",
		KeyTheChannelCloseWasRequested: "Se solicitó cerrar el canal de pago",
		KeyBurnURIToken:                "Quemar token URI",
		KeyTheURITokenIDIs:             "El ID del token URI es %s",
	},
}

var (
	cat = func() catalog.Catalog {
		b := catalog.NewBuilder(catalog.Fallback(language.English))
		for tag, msgs := range messages {
			for key, msg := range msgs {
				if err := b.SetString(tag, key, msg); err != nil {
					panic(err)
				}
			}
		}
		return b
	}()

	mu      sync.RWMutex
	printer = message.NewPrinter(language.English, message.Catalog(cat))
)

// Printer renders messages in the best supported match for tag.
func Printer(tag language.Tag) *message.Printer {
	_, idx, _ := matcher.Match(tag)
	return message.NewPrinter(supported[idx], message.Catalog(cat))
}

// SetLanguage changes the language used by T.
func SetLanguage(tag language.Tag) {
	p := Printer(tag)
	mu.Lock()
	printer = p
	mu.Unlock()
}

// T renders message key with args in the current language.
func T(key string, args ...any) string {
	mu.RLock()
	p := printer
	mu.RUnlock()
	return p.Sprintf(key, args...)
}
