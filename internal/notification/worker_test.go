package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rental-listing-backend/internal/db"
	"rental-listing-backend/internal/model"
)

type sentMessage struct {
	endpoint string
	payload  string
}

// mockSender records every delivery and answers with a fixed status code.
type mockSender struct {
	status int
	sent   []sentMessage
}

func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	m.sent = append(m.sent, sentMessage{endpoint: sub.Endpoint, payload: string(payload)})
	return &http.Response{
		StatusCode: m.status,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

func newTestPool(t *testing.T, status int) (*WorkerPool, *mockSender, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gormDB))

	sender := &mockSender{status: status}
	pool := NewWorkerPool(1, gormDB, &webpush.Options{})
	pool.SetSender(sender)
	return pool, sender, gormDB
}

func seedBooking(t *testing.T, gormDB *gorm.DB) model.Reserve {
	t.Helper()

	apartment := model.Apartment{Username: "landlord", Title: "两室一厅"}
	require.NoError(t, gormDB.Create(&apartment).Error)

	slot := model.ReserveChoice{ApartmentID: apartment.ID, TimeStart: "10:00:00", TimeEnd: "11:00:00"}
	require.NoError(t, gormDB.Create(&slot).Error)

	reserve := model.Reserve{Username: "tenant", ApartmentID: apartment.ID, ReserveChoiceID: slot.ID}
	require.NoError(t, gormDB.Create(&reserve).Error)
	return reserve
}

func subscribe(t *testing.T, gormDB *gorm.DB, username, endpoint string) {
	t.Helper()
	sub := model.PushSubscription{Endpoint: endpoint, Username: username, P256DH: "p256dh", Auth: "auth"}
	require.NoError(t, gormDB.Create(&sub).Error)
}

func TestReserveCreatedNotifiesOwner(t *testing.T) {
	pool, sender, gormDB := newTestPool(t, http.StatusCreated)
	reserve := seedBooking(t, gormDB)
	subscribe(t, gormDB, "landlord", "https://push.example/owner")
	subscribe(t, gormDB, "tenant", "https://push.example/tenant")

	pool.handleEvent(context.Background(), Event{Kind: EventReserveCreated, ReserveID: reserve.ID})

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "https://push.example/owner", sender.sent[0].endpoint)
	assert.Contains(t, sender.sent[0].payload, "tenant")
	assert.Contains(t, sender.sent[0].payload, "两室一厅")
}

func TestReserveCancelledNotifiesBothParties(t *testing.T) {
	pool, sender, gormDB := newTestPool(t, http.StatusCreated)
	reserve := seedBooking(t, gormDB)
	subscribe(t, gormDB, "landlord", "https://push.example/owner")
	subscribe(t, gormDB, "tenant", "https://push.example/tenant")

	pool.handleEvent(context.Background(), Event{Kind: EventReserveCancelled, ReserveID: reserve.ID})

	require.Len(t, sender.sent, 2)
	endpoints := []string{sender.sent[0].endpoint, sender.sent[1].endpoint}
	assert.Contains(t, endpoints, "https://push.example/owner")
	assert.Contains(t, endpoints, "https://push.example/tenant")
}

func TestExpiredSubscriptionPruned(t *testing.T) {
	pool, sender, gormDB := newTestPool(t, http.StatusGone)
	reserve := seedBooking(t, gormDB)
	subscribe(t, gormDB, "landlord", "https://push.example/expired")

	pool.handleEvent(context.Background(), Event{Kind: EventReserveCreated, ReserveID: reserve.ID})

	require.Len(t, sender.sent, 1)
	var count int64
	require.NoError(t, gormDB.Model(&model.PushSubscription{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMissingReserveIgnored(t *testing.T) {
	pool, sender, _ := newTestPool(t, http.StatusCreated)

	pool.handleEvent(context.Background(), Event{Kind: EventReserveCreated, ReserveID: 404})
	assert.Empty(t, sender.sent)
}
