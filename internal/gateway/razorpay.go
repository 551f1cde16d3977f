package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

var Client *razorpay.Client

var keySecret string

func InitRazorpay(keyID, secret string) {
	Client = razorpay.NewClient(keyID, secret)
	keySecret = secret
	fmt.Println("✅ Razorpay client ready")
}

// CreateOrder asks the gateway for an order in minor currency units and
// returns the gateway order id.
func CreateOrder(amount int, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": "INR",
		"receipt":  receipt,
	}
	body, err := Client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("gateway order creation failed: %w", err)
	}
	orderID, ok := body["id"].(string)
	if !ok {
		return "", errors.New("gateway response missing order id")
	}
	return orderID, nil
}

// VerifySignature recomputes the callback signature over "orderID|paymentID"
// with the key secret and compares hex digests.
func VerifySignature(orderID, paymentID, signature string) bool {
	return SignPayload(orderID, paymentID, keySecret) == signature
}

// SignPayload produces the signature the gateway would send for a given
// order and payment id. Used by tests and local tooling.
func SignPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
