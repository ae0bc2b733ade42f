// Package payment holds the VNPay checksum scheme used by the payment callbacks.
package payment

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	ParamSecureHash     = "vnp_SecureHash"
	ParamSecureHashType = "vnp_SecureHashType"
	ParamTxnRef         = "vnp_TxnRef"
	ParamAmount         = "vnp_Amount"
	ParamResponseCode   = "vnp_ResponseCode"
	ParamTmnCode        = "vnp_TmnCode"
)

// IPN response codes
const (
	RspSuccess          = "00"
	RspOrderNotFound    = "01"
	RspAlreadyConfirmed = "02"
	RspInvalidAmount    = "04"
	RspInvalidSignature = "97"
	RspUnknownError     = "99"
)

// amountScale is the factor VNPay applies to amounts (no decimal point on the wire)
var amountScale = decimal.NewFromInt(100)

// Signer signs and verifies VNPay query parameters with a merchant hash secret
type Signer struct {
	secret []byte
}

// NewSigner creates a signer for the given hash secret
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the hex HMAC-SHA512 of the canonical query: vnp_ keys sorted
// ascending, values URL-encoded, hash fields excluded.
func (s *Signer) Sign(params url.Values) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(canonical(params)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks vnp_SecureHash against the remaining parameters
func (s *Signer) Verify(params url.Values) bool {
	got, err := hex.DecodeString(strings.ToLower(params.Get(ParamSecureHash)))
	if err != nil || len(got) == 0 {
		return false
	}
	want, _ := hex.DecodeString(s.Sign(params))
	return hmac.Equal(got, want)
}

// SignedQuery returns the encoded query string with vnp_SecureHash appended
func (s *Signer) SignedQuery(params url.Values) string {
	return canonical(params) + "&" + ParamSecureHash + "=" + s.Sign(params)
}

func canonical(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == ParamSecureHash || k == ParamSecureHashType {
			continue
		}
		if !strings.HasPrefix(k, "vnp_") || params.Get(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params.Get(k)))
	}
	return b.String()
}

// ToWireAmount converts an amount to VNPay's integer representation (x100)
func ToWireAmount(amount decimal.Decimal) string {
	return amount.Mul(amountScale).Truncate(0).String()
}

// FromWireAmount parses VNPay's integer amount back into currency units
func FromWireAmount(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	return v.Div(amountScale), nil
}
