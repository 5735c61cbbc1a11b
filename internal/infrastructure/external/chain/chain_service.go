package chain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/castledice/storage/internal/domain"

	"github.com/hashicorp/go-retryablehttp"
)

// transferEvent is the payload posted to the chain gateway after a match
type transferEvent struct {
	FromAuthID int64   `json:"from_auth_id"`
	ToAuthID   int64   `json:"to_auth_id"`
	NFTIDs     []int64 `json:"nft_ids"`
}

type chainGatewayImpl struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
}

// NewChainGateway creates a chain gateway client. An empty baseURL yields a
// gateway that drops all notifications.
func NewChainGateway(baseURL, apiKey string) domain.ChainGateway {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil

	return &chainGatewayImpl{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

// NotifyTransfer posts a transfer event for the matched nft ids.
//
// TODO: mint and burn notifications once the chain service exposes them; the
// ledger itself never touches the chain.
func (c *chainGatewayImpl) NotifyTransfer(fromAuthID, toAuthID int64, nftIDs []int64) error {
	if c.baseURL == "" {
		return nil
	}

	event := transferEvent{
		FromAuthID: fromAuthID,
		ToAuthID:   toAuthID,
		NFTIDs:     nftIDs,
	}
	return c.sendRequest("POST", fmt.Sprintf("%s/api/v1/transfers", c.baseURL), event, http.StatusAccepted)
}

func (c *chainGatewayImpl) sendRequest(method, url string, bodyData any, expectedStatus int) error {
	jsonBytes, err := json.Marshal(bodyData)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := retryablehttp.NewRequest(method, url, bytes.NewBuffer(jsonBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("chain gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		return fmt.Errorf("chain gateway error: unexpected status %d", resp.StatusCode)
	}
	return nil
}
