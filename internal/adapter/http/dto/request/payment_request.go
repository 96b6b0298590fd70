package request

import "encoding/json"

// PaymentCreateRequest is the payload for the "pay and confirm" route.
//
// `provider_payload` is kept as raw JSON to support varying payment provider
// schemas; the use case overwrites the amount and reference fields before the
// gateway ever sees it.

type PaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
