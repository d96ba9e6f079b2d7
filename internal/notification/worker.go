package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"

	"rental-listing-backend/internal/model"
)

// EventKind classifies a booking event.
type EventKind string

const (
	EventReserveCreated   EventKind = "reserve_created"
	EventReserveCancelled EventKind = "reserve_cancelled"
)

// Event is one booking event to deliver as a web push notification.
type Event struct {
	Kind      EventKind
	ReserveID int64
}

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real Sender implementation using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool manages a pool of workers delivering booking notifications.
type WorkerPool struct {
	size    int
	jobs    chan Event
	db      *gorm.DB
	webpush *webpush.Options
	sender  Sender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, db *gorm.DB, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan Event, size),
		db:      db,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
	}
}

// SetSender replaces the delivery backend; used by tests.
func (wp *WorkerPool) SetSender(s Sender) {
	wp.sender = s
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Notification worker %d started", id)
	for {
		select {
		case event := <-wp.jobs:
			wp.handleEvent(ctx, event)
		case <-ctx.Done():
			log.Printf("Notification worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues a booking event for delivery.
func (wp *WorkerPool) Dispatch(event Event) {
	wp.jobs <- event
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan Event {
	return wp.jobs
}

// handleEvent resolves the reserve behind an event, picks the recipients and
// sends one push message per live subscription.
func (wp *WorkerPool) handleEvent(ctx context.Context, event Event) {
	var reserve model.Reserve
	if err := wp.db.WithContext(ctx).First(&reserve, event.ReserveID).Error; err != nil {
		log.Printf("Error fetching reserve %d: %v", event.ReserveID, err)
		return
	}

	var apartment model.Apartment
	if err := wp.db.WithContext(ctx).
		Select("id", "username", "title").
		First(&apartment, reserve.ApartmentID).Error; err != nil {
		log.Printf("Error fetching apartment %d: %v", reserve.ApartmentID, err)
		return
	}

	var message string
	recipients := []string{apartment.Username}
	switch event.Kind {
	case EventReserveCreated:
		message = fmt.Sprintf("%s 预约了看房：%s", reserve.Username, apartment.Title)
	case EventReserveCancelled:
		message = fmt.Sprintf("看房预约已取消：%s", apartment.Title)
		recipients = append(recipients, reserve.Username)
	default:
		return
	}

	var subscriptions []model.PushSubscription
	err := wp.db.WithContext(ctx).
		Where("username IN ?", recipients).
		Find(&subscriptions).Error
	if err != nil {
		log.Printf("Error fetching subscriptions for reserve %d: %v", event.ReserveID, err)
		return
	}

	for _, sub := range subscriptions {
		wp.sendNotification(ctx, sub, []byte(message))
	}
}

// sendNotification sends a single web push notification and prunes the
// subscription when the push service reports it gone.
func (wp *WorkerPool) sendNotification(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		if err := wp.db.WithContext(ctx).Delete(&sub).Error; err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
