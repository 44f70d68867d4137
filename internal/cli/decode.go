package cli

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	binarycodec "github.com/LeJamon/goXRPLkit/internal/codec/binary-codec"
	"github.com/LeJamon/goXRPLkit/internal/core/tx"
	"github.com/LeJamon/goXRPLkit/internal/core/tx/nftoken"
	"github.com/LeJamon/goXRPLkit/internal/core/tx/paychan"
	"github.com/LeJamon/goXRPLkit/internal/core/tx/uritoken"
	"github.com/LeJamon/goXRPLkit/internal/crypto"
	"github.com/LeJamon/goXRPLkit/internal/logger"
)

// DecodedView is the JSON rendering of one decoded transaction.
type DecodedView struct {
	File            string         `json:"file"`
	Type            string         `json:"type"`
	TransactionType string         `json:"transactionType"`
	Fields          map[string]any `json:"fields"`
	Derived         map[string]any `json:"derived,omitempty"`
	Label           string         `json:"label,omitempty"`
	Description     string         `json:"description,omitempty"`
}

type decodeOptions struct {
	txFiles   []string
	metaFiles []string
	binary    bool
}

func newDecodeCmd(a *app) *cobra.Command {
	opts := &decodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode --tx FILE [--meta FILE] ...",
		Short: "Decode transactions into typed views",
		Long: `Decode one or more transactions and print their typed views as JSON.

Each --tx file holds a transaction object, or a tx/account_tx style envelope
whose tx, tx_json and meta members are used. --meta files pair with --tx
files by position. With --binary both hold serialized hex blobs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.txFiles) == 0 {
				return fmt.Errorf("at least one --tx file is required")
			}
			if len(opts.metaFiles) > len(opts.txFiles) {
				return fmt.Errorf("%d --meta files for %d --tx files", len(opts.metaFiles), len(opts.txFiles))
			}

			views := make([]DecodedView, len(opts.txFiles))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, file := range opts.txFiles {
				var metaFile string
				if i < len(opts.metaFiles) {
					metaFile = opts.metaFiles[i]
				}
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					v, err := decodeFile(file, metaFile, opts.binary)
					if err != nil {
						return err
					}
					views[i] = v
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			logger.Debug("Decoded transactions", "count", len(views))

			if len(views) == 1 {
				return a.writeJSON(cmd.OutOrStdout(), views[0])
			}
			return a.writeJSON(cmd.OutOrStdout(), views)
		},
	}

	cmd.Flags().StringArrayVar(&opts.txFiles, "tx", nil, "transaction file (repeatable)")
	cmd.Flags().StringArrayVar(&opts.metaFiles, "meta", nil, "metadata file, paired with --tx by position (repeatable)")
	cmd.Flags().BoolVar(&opts.binary, "binary", false, "files hold serialized hex blobs")
	return cmd
}

func decodeFile(txFile, metaFile string, binary bool) (DecodedView, error) {
	data, err := os.ReadFile(txFile)
	if err != nil {
		return DecodedView{}, err
	}
	var metaData []byte
	if metaFile != "" {
		if metaData, err = os.ReadFile(metaFile); err != nil {
			return DecodedView{}, err
		}
	}

	var raw, meta []byte
	if binary {
		if raw, err = blobToJSON(data, true); err != nil {
			return DecodedView{}, fmt.Errorf("%s: %w", txFile, err)
		}
		if metaData != nil {
			if meta, err = blobToJSON(metaData, false); err != nil {
				return DecodedView{}, fmt.Errorf("%s: %w", metaFile, err)
			}
		}
	} else {
		raw, meta = splitEnvelope(data)
		if metaData != nil {
			meta = metaData
		}
	}

	return render(txFile, tx.Decode(raw, meta)), nil
}

// splitEnvelope separates the transaction and metadata of an RPC result.
// A bare transaction object is returned unchanged with no metadata.
func splitEnvelope(data []byte) (raw, meta []byte) {
	doc := gjson.ParseBytes(data)
	raw = data
	for _, key := range []string{"tx_json", "tx"} {
		if inner := doc.Get(key); inner.IsObject() {
			raw = []byte(inner.Raw)
			break
		}
	}
	for _, key := range []string{"meta", "metaData"} {
		if m := doc.Get(key); m.IsObject() {
			meta = []byte(m.Raw)
			break
		}
	}
	return raw, meta
}

// blobToJSON decodes a serialized object with the default definitions.
// Signed transactions get their hash, which the blob does not carry.
func blobToJSON(data []byte, signedTx bool) ([]byte, error) {
	blob := string(bytes.TrimSpace(data))
	raw, err := hex.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("not a hex blob: %w", err)
	}
	obj, err := binarycodec.Decode(blob)
	if err != nil {
		return nil, err
	}
	if _, ok := obj["hash"]; signedTx && !ok {
		id := crypto.TransactionID(raw)
		obj["hash"] = strings.ToUpper(hex.EncodeToString(id[:]))
	}
	return json.Marshal(obj)
}

func render(file string, t tx.Transaction) DecodedView {
	v := DecodedView{
		File:            file,
		Type:            t.Type().String(),
		TransactionType: t.TransactionType(),
		Fields:          tx.Values(t),
	}
	if d, ok := t.(tx.Deriver); ok {
		v.Derived = d.Derived()
	}
	v.Label, v.Description = describe(t)
	return v
}

func describe(t tx.Transaction) (label, description string) {
	switch v := t.(type) {
	case *nftoken.NFTokenMint:
		return nftoken.MintInfo.Label(), nftoken.MintInfo.Description(v)
	case *paychan.PaymentChannelClaim:
		return paychan.ClaimInfo.Label(), paychan.ClaimInfo.Description(v)
	case *uritoken.URITokenBurn:
		return uritoken.BurnInfo.Label(), uritoken.BurnInfo.Description(v)
	}
	return "", ""
}
