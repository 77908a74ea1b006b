// Package notify pushes dispatch events to an external webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// WebhookNotifier implements the notifier port with a JSON POST per event.
// Delivery is best effort; callers are expected to log a failed push and
// carry on.
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
}

// NewWebhookNotifier creates a notifier posting to the given URL.
func NewWebhookNotifier(url string, timeout time.Duration) (*WebhookNotifier, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("url")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &WebhookNotifier{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type courierAssignedPayload struct {
	Event       string `json:"event"`
	OrderID     string `json:"order_id"`
	CourierID   string `json:"courier_id"`
	CourierName string `json:"courier_name"`
}

// NotifyCourierAssigned announces that a courier has been put on an order.
func (n *WebhookNotifier) NotifyCourierAssigned(
	ctx context.Context, orderID, courierID kernel.UUID, courierName string,
) error {
	body, err := json.Marshal(courierAssignedPayload{
		Event:       "courier_assigned",
		OrderID:     orderID.String(),
		CourierID:   courierID.String(),
		CourierName: courierName,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errs.NewDependencyUnavailableError("webhook", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return errs.NewDependencyUnavailableError(
			"webhook", fmt.Errorf("status %d", resp.StatusCode))
	}
	return nil
}
