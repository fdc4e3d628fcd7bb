package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Config carries the order-validation API credentials.
type Config struct {
	StoreID       string
	StorePassword string
	BaseURL       string
	Timeout       time.Duration
}

// Client asks the payment gateway whether a transaction is authentic. It is
// stateless; a false return is final for that invocation and the caller never
// retries through this client.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	storeID       string
	storePassword string
	logger        *slog.Logger
}

func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       config.BaseURL,
		storeID:       config.StoreID,
		storePassword: config.StorePassword,
		logger:        logger,
	}
}

type validationResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"tran_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

// Validate performs the gateway order-validation call for the callback's
// validation id and checks that the gateway's view of the transaction matches
// what the callback claims. Missing required parameters short-circuit to
// false without any network traffic.
func (c *Client) Validate(ctx context.Context, transactionID, amount, currency string, params map[string]string) bool {
	validationID := params["val_id"]
	if transactionID == "" || validationID == "" || amount == "" || currency == "" {
		c.logger.Warn("validation skipped: missing required callback parameters",
			"tran_id", transactionID,
			"has_val_id", validationID != "")
		return false
	}

	query := url.Values{}
	query.Set("val_id", validationID)
	query.Set("store_id", c.storeID)
	query.Set("store_passwd", c.storePassword)
	query.Set("format", "json")

	endpoint := fmt.Sprintf("%s/validator/api/validationserverAPI.php?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("failed to create validation request", "error", err, "tran_id", transactionID)
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("gateway validation request failed", "error", err, "tran_id", transactionID)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("gateway validation returned non-200",
			"status", resp.StatusCode,
			"tran_id", transactionID)
		return false
	}

	var vr validationResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		c.logger.Error("failed to decode validation response", "error", err, "tran_id", transactionID)
		return false
	}

	if vr.Status != "VALID" && vr.Status != "VALIDATED" {
		c.logger.Warn("gateway rejected transaction",
			"gateway_status", vr.Status,
			"tran_id", transactionID)
		return false
	}

	if vr.TransactionID != transactionID {
		c.logger.Warn("gateway transaction id mismatch",
			"tran_id", transactionID,
			"gateway_tran_id", vr.TransactionID)
		return false
	}

	claimed, err := decimal.NewFromString(amount)
	if err != nil {
		c.logger.Warn("callback amount is not a valid decimal", "amount", amount, "tran_id", transactionID)
		return false
	}
	reported, err := decimal.NewFromString(vr.Amount)
	if err != nil {
		c.logger.Error("gateway reported a non-decimal amount", "amount", vr.Amount, "tran_id", transactionID)
		return false
	}
	if !claimed.Equal(reported) {
		c.logger.Warn("gateway amount mismatch",
			"claimed", claimed.String(),
			"reported", reported.String(),
			"tran_id", transactionID)
		return false
	}

	if vr.Currency != "" && vr.Currency != currency {
		c.logger.Warn("gateway currency mismatch",
			"claimed", currency,
			"reported", vr.Currency,
			"tran_id", transactionID)
		return false
	}

	c.logger.Info("transaction validated by gateway",
		"tran_id", transactionID,
		"val_id", validationID,
		"amount", amount)
	return true
}
