package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"autoshop_crm/internal/domain/entities"
	"autoshop_crm/internal/usecase/interfaces"
)

const defaultDispatchTimeout = 5 * time.Second

// WebhookDispatcher posts status updates to a configured webhook. When
// NOTIFY_WEBHOOK_URL is unset the dispatcher logs and drops the update:
// notifications are best-effort and must never block the workflow.
type WebhookDispatcher struct {
	httpClient *http.Client
	webhookURL string
}

var _ interfaces.INotificationDispatcher = (*WebhookDispatcher)(nil)

func NewWebhookDispatcher() *WebhookDispatcher {
	webhookURL := strings.TrimSpace(os.Getenv("NOTIFY_WEBHOOK_URL"))
	if webhookURL == "" {
		log.Printf("[notify][dispatcher] NOTIFY_WEBHOOK_URL not set, status updates will be dropped")
	} else {
		log.Printf("[notify][dispatcher] webhook dispatcher initialized")
	}

	return &WebhookDispatcher{
		httpClient: &http.Client{Timeout: defaultDispatchTimeout},
		webhookURL: webhookURL,
	}
}

type statusUpdatePayload struct {
	WorkOrderID string `json:"work_order_id"`
	Status      string `json:"status"`
	OccurredAt  string `json:"occurred_at"`
}

func (d *WebhookDispatcher) SendStatusUpdate(ctx context.Context, workOrderID string, status entities.WorkOrderStatus) error {
	if d.webhookURL == "" {
		log.Printf("[notify][dispatcher] dropped status update work_order_id=%s status=%s", workOrderID, status)
		return nil
	}

	body, err := json.Marshal(statusUpdatePayload{
		WorkOrderID: workOrderID,
		Status:      string(status),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		log.Printf("[notify][dispatcher] send failed work_order_id=%s err=%v", workOrderID, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[notify][dispatcher] webhook rejected work_order_id=%s status=%d", workOrderID, resp.StatusCode)
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	log.Printf("[notify][dispatcher] status update sent work_order_id=%s status=%s", workOrderID, status)
	return nil
}
