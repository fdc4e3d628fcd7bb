package payment

import (
	"net/url"
)

// CallbackParams is the ephemeral payload of one gateway delivery. It is
// never persisted; only the fields copied into payment records survive.
type CallbackParams struct {
	TransactionID    string
	ValidationID     string
	Status           string
	Amount           string
	Currency         string
	CorrelationToken string
	PaymentMethod    string
	Raw              map[string]string
}

// CallbackFromForm maps the gateway's form-encoded POST into CallbackParams.
func CallbackFromForm(values url.Values) CallbackParams {
	raw := make(map[string]string, len(values))
	for key := range values {
		raw[key] = values.Get(key)
	}

	return CallbackParams{
		TransactionID:    values.Get("tran_id"),
		ValidationID:     values.Get("val_id"),
		Status:           values.Get("status"),
		Amount:           values.Get("amount"),
		Currency:         values.Get("currency"),
		CorrelationToken: values.Get("value_a"),
		PaymentMethod:    values.Get("card_type"),
		Raw:              raw,
	}
}

// HasRequiredFields reports whether the identifiers the engine cannot work
// without are present.
func (p CallbackParams) HasRequiredFields() bool {
	return p.TransactionID != "" && p.ValidationID != ""
}
