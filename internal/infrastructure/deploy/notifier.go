package deploy

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mononotes/mononotes/internal/domain/contract"
)

// WebhookNotifier triggers a downstream deploy by POSTing an empty body to
// a configured hook URL.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier creates a notifier for one hook URL.
func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

var _ contract.IDeployNotifier = (*WebhookNotifier)(nil)

// Notify calls the deploy hook. Callers treat a failure as a downgraded
// success message, never as a failed publish.
func (n *WebhookNotifier) Notify(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, nil)
	if err != nil {
		return err
	}
	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("deploy hook responded with status %d", resp.StatusCode)
	}
	return nil
}
