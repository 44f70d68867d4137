package cli

import (
	"bytes"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	binarycodec "github.com/LeJamon/goXRPLkit/internal/codec/binary-codec"
	"github.com/LeJamon/goXRPLkit/internal/core/probe"
	_ "github.com/LeJamon/goXRPLkit/internal/core/tx/all"
	"github.com/LeJamon/goXRPLkit/internal/crypto"
)

var xahauDefinitions = filepath.Join("..", "codec", "binary-codec", "definitions", "testdata", "xahau_definitions.json")

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecode_Payment(t *testing.T) {
	out, err := run(t, "", "decode", "--tx", "testdata/payment.json", "--meta", "testdata/payment_meta.json")
	require.NoError(t, err)

	doc := gjson.Parse(out)
	assert.Equal(t, "Payment", doc.Get("type").String())
	assert.Equal(t, "Payment", doc.Get("transactionType").String())
	assert.Equal(t, "rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe", doc.Get("fields.Destination").String())
	assert.JSONEq(t, `{"currency": "XRP", "value": "2.5"}`, doc.Get("fields.Amount").Raw)
	assert.JSONEq(t, `{"currency": "XRP", "value": "0.000012"}`, doc.Get("fields.Fee").Raw)
	assert.True(t, doc.Get("derived.IsPartialPayment").Bool())
	assert.JSONEq(t, `{"currency": "XRP", "value": "1"}`, doc.Get("derived.DeliveredAmount").Raw)
	assert.False(t, doc.Get("label").Exists())
}

func TestDecode_EnvelopeAndDescription(t *testing.T) {
	out, err := run(t, "", "decode", "--tx", "testdata/claim.json")
	require.NoError(t, err)

	doc := gjson.Parse(out)
	assert.Equal(t, "PaymentChannelClaim", doc.Get("type").String())
	assert.True(t, doc.Get("derived.IsClosed").Bool())
	assert.Equal(t, "Claim payment channel", doc.Get("label").String())
	assert.Equal(t, strings.Join([]string{
		"The channel ID is C1AE6DDDEEC05CF2978C0BAD6FE302948E9533691DC749DCDD3B9E5992CA6198",
		"The claimed balance is 0.35 XRP",
		"The payment channel was closed",
	}, "\n"), doc.Get("description").String())
}

func TestDecode_MintDescription(t *testing.T) {
	out, err := run(t, "", "decode", "--tx", "testdata/mint.json")
	require.NoError(t, err)

	doc := gjson.Parse(out)
	assert.Equal(t, "Mint NFT", doc.Get("label").String())
	assert.Equal(t, strings.Join([]string{
		"The token ID is 000B013A95F14B0044F78A264E41713C64B5F89242540EE208C3098E00000D65",
		"The token has no transfer fee",
		"The token taxon for this token is 0",
	}, "\n"), doc.Get("description").String())
}

func TestDecode_MultipleKeepsOrder(t *testing.T) {
	files := []string{"testdata/unknown.json", "testdata/payment.json", "testdata/claim.json", "testdata/mint.json"}
	args := []string{"decode"}
	for _, f := range files {
		args = append(args, "--tx", f)
	}

	out, err := run(t, "", args...)
	require.NoError(t, err)

	views := gjson.Parse(out).Array()
	require.Len(t, views, len(files))
	for i, f := range files {
		assert.Equal(t, f, views[i].Get("file").String())
	}

	unknown := views[0]
	assert.Equal(t, "Unknown", unknown.Get("type").String())
	assert.Equal(t, "AMMDeposit", unknown.Get("transactionType").String())
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", unknown.Get("fields.Account").String())
	assert.False(t, unknown.Get("derived").Exists())
}

func TestDecode_Binary(t *testing.T) {
	blob, err := binarycodec.Encode(map[string]any{
		"TransactionType": "Payment",
		"Account":         "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		"Destination":     "rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe",
		"Amount":          "1000000",
		"Fee":             "12",
		"Sequence":        uint32(1),
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "payment.hex")
	require.NoError(t, os.WriteFile(path, []byte(blob+"\n"), 0644))

	out, err := run(t, "", "decode", "--binary", "--tx", path)
	require.NoError(t, err)

	doc := gjson.Parse(out)
	assert.Equal(t, "Payment", doc.Get("type").String())
	assert.JSONEq(t, `{"currency": "XRP", "value": "1"}`, doc.Get("fields.Amount").Raw)
	assert.Equal(t, int64(1), doc.Get("fields.Sequence").Int())

	raw, err := hex.DecodeString(blob)
	require.NoError(t, err)
	id := crypto.TransactionID(raw)
	assert.Equal(t, strings.ToUpper(hex.EncodeToString(id[:])), doc.Get("fields.hash").String())

	_, err = run(t, "", "decode", "--binary", "--tx", "testdata/payment.json")
	assert.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	_, err := run(t, "", "decode")
	assert.Error(t, err)

	_, err = run(t, "", "decode", "--tx", "testdata/missing.json")
	assert.Error(t, err)

	_, err = run(t, "", "decode", "--tx", "testdata/payment.json", "--meta", "a", "--meta", "b")
	assert.Error(t, err)
}

func TestFees(t *testing.T) {
	out, err := run(t, `{"drops": {"base_fee": "10"}, "fee_hooks_feeunits": 3}`, "fees")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"availableFees": [
			{"type": "LOW", "value": "12"},
			{"type": "MEDIUM", "value": "15"},
			{"type": "HIGH", "value": "25"}
		],
		"feeHooks": 3,
		"suggested": "LOW"
	}`, out)

	_, err = run(t, `[]`, "fees", "-")
	assert.Error(t, err)
}

func TestProbe(t *testing.T) {
	txJSON := `{"TransactionType": "Payment", "Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "Destination": "rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe"}`

	out, err := run(t, txJSON, "probe")
	require.NoError(t, err)

	want, err := probe.PrepareTxForHookFee([]byte(txJSON), nil)
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)

	_, err = run(t, `"Payment"`, "probe")
	assert.ErrorIs(t, err, probe.ErrInvalidInput)
}

func TestProbe_Definitions(t *testing.T) {
	txJSON := `{"TransactionType": "URITokenBurn", "Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "URITokenID": "B5F762798A53D543A014CAF8B297CFF8F2F937E8C25E6A6D3C4B0A5B8E9F7011"}`

	out, err := run(t, txJSON, "probe", "--definitions", xahauDefinitions)
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))

	t.Setenv("XRPLKIT_PROBE_DEFINITIONS_FILE", xahauDefinitions)
	fromConfig, err := run(t, txJSON, "probe")
	require.NoError(t, err)
	assert.Equal(t, out, fromConfig)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "xrplkit version "+Version)
}
