package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Payment confirmation in this engine is a pure state transition; the gateway
// only produces a provider receipt recorded alongside it. A mock
// implementation is the default so the lifecycle works without credentials.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
