package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acquiropay/gateway/internal/application/usecase"
	"github.com/acquiropay/gateway/internal/domain/model"
	"github.com/acquiropay/gateway/internal/domain/valueobject"
	"github.com/acquiropay/gateway/internal/infrastructure/memory"
)

func TestGetPayment_Found(t *testing.T) {
	repo := memory.NewPaymentRepository()
	id := uuid.New()
	record, err := model.NewPayment(id, valueobject.StatusAuthorized, "11111111111111", 4, 2030, "GBP", 100)
	require.NoError(t, err)
	repo.Put(record)

	resp, found := usecase.NewGetPayment(repo).Execute(context.Background(), id)

	require.True(t, found)
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "AUTHORIZED", resp.Status)
	assert.Equal(t, "1111", resp.CardNumberLastFour)
	assert.Equal(t, 4, resp.ExpiryMonth)
	assert.Equal(t, 2030, resp.ExpiryYear)
	assert.Equal(t, "GBP", resp.Currency)
	assert.Equal(t, 100, resp.Amount)
}

func TestGetPayment_NotFound(t *testing.T) {
	repo := memory.NewPaymentRepository()

	_, found := usecase.NewGetPayment(repo).Execute(context.Background(), uuid.New())

	assert.False(t, found)
}

func TestGetPayment_RepeatedReadsReturnSameRecord(t *testing.T) {
	repo := memory.NewPaymentRepository()
	id := uuid.New()
	record, err := model.NewPayment(id, valueobject.StatusDeclined, "11111111111112", 12, 2031, "EUR", 999)
	require.NoError(t, err)
	repo.Put(record)

	get := usecase.NewGetPayment(repo)
	first, found := get.Execute(context.Background(), id)
	require.True(t, found)
	second, found := get.Execute(context.Background(), id)
	require.True(t, found)

	assert.Equal(t, first, second)
}
