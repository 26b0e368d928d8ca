package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memDeliveryStore struct {
	nextID     int
	deliveries map[int]*models.Delivery
}

func newMemDeliveryStore() *memDeliveryStore {
	return &memDeliveryStore{nextID: 1, deliveries: make(map[int]*models.Delivery)}
}

func (m *memDeliveryStore) Create(ctx context.Context, d *models.Delivery) error {
	for _, existing := range m.deliveries {
		if existing.LRNo == d.LRNo {
			return apperrors.ErrConflict
		}
	}
	d.ID = m.nextID
	m.nextID++
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	cp := *d
	m.deliveries[d.ID] = &cp
	return nil
}

func (m *memDeliveryStore) Get(ctx context.Context, id int) (*models.Delivery, error) {
	d, ok := m.deliveries[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memDeliveryStore) List(ctx context.Context) ([]*models.Delivery, error) {
	var out []*models.Delivery
	for _, d := range m.deliveries {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memDeliveryStore) Update(ctx context.Context, d *models.Delivery) error {
	if _, ok := m.deliveries[d.ID]; !ok {
		return apperrors.ErrNotFound
	}
	cp := *d
	m.deliveries[d.ID] = &cp
	return nil
}

func (m *memDeliveryStore) Delete(ctx context.Context, id int) error {
	if _, ok := m.deliveries[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.deliveries, id)
	return nil
}

func TestCreateDelivery_Defaults(t *testing.T) {
	ctx := context.Background()
	svc := NewDeliveryService(newMemDeliveryStore())

	d, err := svc.CreateDelivery(ctx, &models.CreateDeliveryRequest{
		LRNo:          "LR-2001",
		VehicleNumber: "TS09AB1234",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryPending, d.Status)
	assert.Equal(t, "KTD", d.Origin)
	assert.Nil(t, d.DeliveryDate)
}

func TestCreateDelivery_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewDeliveryService(newMemDeliveryStore())

	_, err := svc.CreateDelivery(ctx, &models.CreateDeliveryRequest{VehicleNumber: "TS09AB1234"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = svc.CreateDelivery(ctx, &models.CreateDeliveryRequest{LRNo: "LR-1"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = svc.CreateDelivery(ctx, &models.CreateDeliveryRequest{
		LRNo: "LR-1", VehicleNumber: "TS09AB1234", Status: "teleported",
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCreateDelivery_DuplicateLR(t *testing.T) {
	ctx := context.Background()
	svc := NewDeliveryService(newMemDeliveryStore())

	req := &models.CreateDeliveryRequest{LRNo: "LR-2001", VehicleNumber: "TS09AB1234"}
	_, err := svc.CreateDelivery(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateDelivery(ctx, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Contains(t, err.Error(), "LR-2001")
}

func TestUpdateDeliveryStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewDeliveryService(newMemDeliveryStore())

	d, err := svc.CreateDelivery(ctx, &models.CreateDeliveryRequest{
		LRNo: "LR-2001", VehicleNumber: "TS09AB1234",
	})
	require.NoError(t, err)

	when := time.Now()
	updated, err := svc.UpdateStatus(ctx, d.ID, &models.UpdateDeliveryStatusRequest{
		Status:         models.DeliveryDelivered,
		DeliveryPerson: "Suresh",
		DeliveryDate:   &when,
		Remarks:        "Left at warehouse gate",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryDelivered, updated.Status)
	assert.Equal(t, "Suresh", updated.DeliveryPerson)
	require.NotNil(t, updated.DeliveryDate)
	// Status transitions leave identifying fields alone
	assert.Equal(t, "LR-2001", updated.LRNo)
	assert.Equal(t, "TS09AB1234", updated.VehicleNumber)
}

func TestUpdateDeliveryStatus_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := NewDeliveryService(newMemDeliveryStore())

	d, err := svc.CreateDelivery(ctx, &models.CreateDeliveryRequest{
		LRNo: "LR-2001", VehicleNumber: "TS09AB1234",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, d.ID, &models.UpdateDeliveryStatusRequest{Status: "misplaced"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestUpdateDelivery_BackwardTransitionAllowed(t *testing.T) {
	ctx := context.Background()
	svc := NewDeliveryService(newMemDeliveryStore())

	d, err := svc.CreateDelivery(ctx, &models.CreateDeliveryRequest{
		LRNo: "LR-2001", VehicleNumber: "TS09AB1234", Status: models.DeliveryDelivered,
	})
	require.NoError(t, err)

	back := models.DeliveryPending
	updated, err := svc.UpdateDelivery(ctx, d.ID, &models.UpdateDeliveryRequest{Status: &back})
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryPending, updated.Status)
}

func TestDeleteDelivery_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewDeliveryService(newMemDeliveryStore())

	err := svc.DeleteDelivery(ctx, 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
