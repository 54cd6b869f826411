package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avery/internal/constants"
	"avery/internal/logger"
	pkgerrors "avery/pkg/errors"
	"avery/pkg/models"
)

type fakeRepo struct {
	appendErr error
	listErr   error
	appended  []struct {
		collection string
		record     models.Record
	}
	records []models.Record
}

func (r *fakeRepo) Append(ctx context.Context, collection string, rec models.Record) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.appended = append(r.appended, struct {
		collection string
		record     models.Record
	}{collection, rec})
	return nil
}

func (r *fakeRepo) List(ctx context.Context, collection string) ([]models.Record, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.records, nil
}

type fakeNotifier struct {
	err   error
	texts []string
}

func (n *fakeNotifier) Notify(ctx context.Context, text string) error {
	if n.err != nil {
		return n.err
	}
	n.texts = append(n.texts, text)
	return nil
}

func fixedClock() func() time.Time {
	now := time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func validSubmission() models.OrderSubmission {
	return models.OrderSubmission{
		CustomerInfo: models.CustomerInfo{
			Name:          "Олена",
			Phone:         "+380501112233",
			Address:       "вул. Шевченка 10",
			DeliveryTime:  "завтра 14:00",
			PaymentMethod: "card",
		},
		Order: models.OrderDetails{
			Items:       []models.OrderItem{{Title: "Букет", Quantity: 1, Price: 500}},
			TotalAmount: 500,
		},
	}
}

func TestIngestOrder(t *testing.T) {
	repo := &fakeRepo{}
	notif := &fakeNotifier{}
	svc := NewService(repo, notif, logger.NopLogger(), WithClock(fixedClock()))

	rec, err := svc.IngestOrder(context.Background(), validSubmission())
	require.NoError(t, err)
	require.NotNil(t, rec)

	require.Len(t, repo.appended, 1)
	assert.Equal(t, constants.CollectionOrders, repo.appended[0].collection)
	assert.Equal(t, rec.Body, repo.appended[0].record.Body)

	require.Len(t, notif.texts, 1)
	assert.Equal(t, rec.Body, notif.texts[0])
	assert.Contains(t, notif.texts[0], constants.OrderMarker)
}

func TestIngestOrder_UnknownPaymentMethodRejected(t *testing.T) {
	repo := &fakeRepo{}
	notif := &fakeNotifier{}
	svc := NewService(repo, notif, logger.NopLogger())

	sub := validSubmission()
	sub.CustomerInfo.PaymentMethod = "barter"

	rec, err := svc.IngestOrder(context.Background(), sub)
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.True(t, pkgerrors.IsValidation(err))

	assert.Empty(t, repo.appended)
	assert.Empty(t, notif.texts)
}

func TestIngestOrder_PersistFailureSkipsNotification(t *testing.T) {
	repo := &fakeRepo{appendErr: errors.New("disk full")}
	notif := &fakeNotifier{}
	svc := NewService(repo, notif, logger.NopLogger())

	rec, err := svc.IngestOrder(context.Background(), validSubmission())
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.True(t, pkgerrors.IsPersistence(err))
	assert.Empty(t, notif.texts)
}

func TestIngestOrder_DeliveryFailureKeepsRecord(t *testing.T) {
	repo := &fakeRepo{}
	notif := &fakeNotifier{err: errors.New("telegram down")}
	svc := NewService(repo, notif, logger.NopLogger())

	rec, err := svc.IngestOrder(context.Background(), validSubmission())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsDelivery(err))

	require.NotNil(t, rec)
	require.Len(t, repo.appended, 1)
	assert.Equal(t, rec.ID, repo.appended[0].record.ID)
}

func TestIngestChat_Message(t *testing.T) {
	repo := &fakeRepo{}
	notif := &fakeNotifier{}
	svc := NewService(repo, notif, logger.NopLogger(), WithClock(fixedClock()))

	msg := models.ChatMessage{
		From: models.Sender{ID: 42, Username: "olena_k", FirstName: "Олена"},
		Text: "чи є доставка завтра?",
	}

	collection, err := svc.IngestChat(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, constants.CollectionMessages, collection)

	require.Len(t, repo.appended, 1)
	assert.Equal(t, constants.CollectionMessages, repo.appended[0].collection)
	assert.Equal(t, msg.Text, repo.appended[0].record.Body)

	require.Len(t, notif.texts, 1)
	assert.Contains(t, notif.texts[0], "New message received:")
}

func TestIngestChat_OrderMarkerRoutesToOrders(t *testing.T) {
	repo := &fakeRepo{}
	notif := &fakeNotifier{}
	svc := NewService(repo, notif, logger.NopLogger())

	msg := models.ChatMessage{
		From: models.Sender{ID: 42, FirstName: "Олена"},
		Text: constants.OrderMarker + "\n\nІм'я: Олена",
	}

	collection, err := svc.IngestChat(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, constants.CollectionOrders, collection)
	assert.Equal(t, constants.CollectionOrders, repo.appended[0].collection)
	assert.Contains(t, notif.texts[0], "New order received:")
}

func TestIngestChat_PersistFailure(t *testing.T) {
	repo := &fakeRepo{appendErr: errors.New("disk full")}
	notif := &fakeNotifier{}
	svc := NewService(repo, notif, logger.NopLogger())

	_, err := svc.IngestChat(context.Background(), models.ChatMessage{
		From: models.Sender{ID: 1, FirstName: "Ivan"},
		Text: "hi",
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsPersistence(err))
	assert.Empty(t, notif.texts)
}

func TestIngestChat_DeliveryFailureKeepsRecord(t *testing.T) {
	repo := &fakeRepo{}
	notif := &fakeNotifier{err: errors.New("telegram down")}
	svc := NewService(repo, notif, logger.NopLogger())

	_, err := svc.IngestChat(context.Background(), models.ChatMessage{
		From: models.Sender{ID: 1, FirstName: "Ivan"},
		Text: "hi",
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsDelivery(err))
	require.Len(t, repo.appended, 1)
}

func TestListOrders(t *testing.T) {
	records := []models.Record{
		models.NewRecord("first", time.Now()),
		models.NewRecord("second", time.Now()),
	}
	repo := &fakeRepo{records: records}
	svc := NewService(repo, &fakeNotifier{}, logger.NopLogger())

	got, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestListOrders_Failure(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("corrupt read")}
	svc := NewService(repo, &fakeNotifier{}, logger.NopLogger())

	_, err := svc.ListOrders(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsPersistence(err))
}
