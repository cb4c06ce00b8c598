package queue

import (
	"fmt"
	"log"
	"time"
)

// ApprovalNotification is published whenever a reviewer decides an approval.
type ApprovalNotification struct {
	ApprovalID    int
	ContentItemID int
	Decision      string
	Reviewer      string
}

// Notifier delivers a notification somewhere (email, chat, ...). The default
// implementation is a mock with a fixed artificial delay.
type Notifier func(n ApprovalNotification) error

// MockNotifier simulates delivery: a fixed delay, then a log line.
func MockNotifier(n ApprovalNotification) error {
	time.Sleep(150 * time.Millisecond)
	log.Printf("📣 approval %d on content %d: %s (by %s)\n", n.ApprovalID, n.ContentItemID, n.Decision, n.Reviewer)
	return nil
}

// StartApprovalSubscriber wires the notifier to the approval_decisions topic.
func StartApprovalSubscriber(q Queue, notify Notifier) {
	go func() {
		err := q.Subscribe("approval_decisions", func(payload any) error {
			n, ok := payload.(ApprovalNotification)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected ApprovalNotification")
				return nil // malformed, no retry
			}

			if err := notify(n); err != nil {
				return fmt.Errorf("notify approval %d: %w", n.ApprovalID, err)
			}
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for approval_decisions:", err)
		}
	}()
}
