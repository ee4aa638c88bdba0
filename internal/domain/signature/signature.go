// Package signature computes the request signatures expected by the payment
// gateway and the supplier. Both sides recompute them, so the byte layout of
// the signed message must not change.
package signature

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// PriceListCommand is the command name signed for a supplier price list pull.
const PriceListCommand = "pricelist"

// Transaction signs a gateway transaction-create request:
// hex(HMAC-SHA256(privateKey, merchantCode + merchantRef + amount)).
func Transaction(privateKey, merchantCode, merchantRef string, amount int64) string {
	mac := hmac.New(sha256.New, []byte(privateKey))
	mac.Write([]byte(merchantCode + merchantRef + strconv.FormatInt(amount, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Supplier signs a supplier command: hex(md5(username + apiKey + command)).
func Supplier(username, apiKey, command string) string {
	sum := md5.Sum([]byte(username + apiKey + command))
	return hex.EncodeToString(sum[:])
}
