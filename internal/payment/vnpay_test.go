package payment

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleParams() url.Values {
	v := url.Values{}
	v.Set("vnp_TmnCode", "COFFEE01")
	v.Set("vnp_TxnRef", "TXN-0001")
	v.Set("vnp_Amount", "4500000")
	v.Set("vnp_ResponseCode", "00")
	v.Set("vnp_OrderInfo", "Order #1 latte x2")
	return v
}

func TestSigner_RoundTrip(t *testing.T) {
	signer := NewSigner("s3cret")
	params := sampleParams()
	params.Set(ParamSecureHash, signer.Sign(params))

	assert.True(t, signer.Verify(params))
	assert.Len(t, params.Get(ParamSecureHash), 128)
}

func TestSigner_IgnoresHashFieldsAndOrder(t *testing.T) {
	signer := NewSigner("s3cret")
	a := sampleParams()
	b := sampleParams()
	b.Set(ParamSecureHashType, "HmacSHA512")
	b.Set(ParamSecureHash, "deadbeef")

	assert.Equal(t, signer.Sign(a), signer.Sign(b))
}

func TestSigner_RejectsTampering(t *testing.T) {
	signer := NewSigner("s3cret")
	params := sampleParams()
	params.Set(ParamSecureHash, signer.Sign(params))

	params.Set("vnp_Amount", "100")
	assert.False(t, signer.Verify(params))
}

func TestSigner_RejectsWrongSecretAndGarbage(t *testing.T) {
	params := sampleParams()
	params.Set(ParamSecureHash, NewSigner("other").Sign(params))
	assert.False(t, NewSigner("s3cret").Verify(params))

	params.Set(ParamSecureHash, "not-hex")
	assert.False(t, NewSigner("s3cret").Verify(params))

	params.Del(ParamSecureHash)
	assert.False(t, NewSigner("s3cret").Verify(params))
}

func TestSignedQuery(t *testing.T) {
	signer := NewSigner("s3cret")
	query := signer.SignedQuery(sampleParams())

	parsed, err := url.ParseQuery(query)
	require.NoError(t, err)
	assert.True(t, signer.Verify(parsed))
	assert.Equal(t, "Order #1 latte x2", parsed.Get("vnp_OrderInfo"))
}

func TestWireAmount(t *testing.T) {
	assert.Equal(t, "4500000", ToWireAmount(decimal.RequireFromString("45000")))
	assert.Equal(t, "1250", ToWireAmount(decimal.RequireFromString("12.50")))

	got, err := FromWireAmount("1250")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got))

	_, err = FromWireAmount("abc")
	assert.Error(t, err)
}
