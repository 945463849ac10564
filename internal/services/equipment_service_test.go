package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/internal/events"
	"association-console/internal/repositories/mocks"
	"association-console/pkg/config"
	apperrors "association-console/pkg/errors"
)

func wheelchairs(quantity int) dto.CreateEquipmentDTO {
	return dto.CreateEquipmentDTO{
		Category:        "wheelchair",
		Source:          "donation",
		Status:          "available",
		AcquisitionType: "gift",
		MonetaryValue:   120,
		Quantity:        quantity,
	}
}

func TestCreateBatch_PartialFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEquipmentRepositoryInterface(ctrl)
	bus := &recordingBus{}

	next := int64(0)
	repo.EXPECT().CreateEquipment(gomock.Any(), wheelchairs(5).Details()).
		DoAndReturn(func(context.Context, dto.EquipmentDetailsDTO) (*entities.MedicalEquipment, error) {
			next++
			if next == 3 {
				return nil, &apperrors.BackendError{Status: 409, Message: "المرجع مستعمل"}
			}
			return &entities.MedicalEquipment{ID: next, Category: "wheelchair"}, nil
		}).Times(5)

	svc := NewEquipmentService(repo, config.BatchConfig{Delay: 5 * time.Millisecond, MaxQuantity: 50}, bus, zap.NewNop())
	start := time.Now()
	result, err := svc.CreateBatch(context.Background(), wheelchairs(5))
	require.NoError(t, err)

	// Five sequential requests paced 5ms apart.
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, 5, result.Requested)
	assert.Equal(t, 4, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Created, 4)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Index)
	assert.Equal(t, "المرجع مستعمل", result.Errors[0].Message)

	published := bus.all()
	require.Len(t, published, 1)
	assert.Equal(t, events.EquipmentBatchFinishedEvent{Requested: 5, Succeeded: 4, Failed: 1}, published[0])
}

func TestCreateBatch_DelayCountsFromEndOfPreviousRequest(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEquipmentRepositoryInterface(ctrl)

	const (
		delay   = 20 * time.Millisecond
		backend = 30 * time.Millisecond
	)
	var starts, ends []time.Time
	repo.EXPECT().CreateEquipment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, dto.EquipmentDetailsDTO) (*entities.MedicalEquipment, error) {
			starts = append(starts, time.Now())
			time.Sleep(backend)
			ends = append(ends, time.Now())
			return &entities.MedicalEquipment{ID: int64(len(ends))}, nil
		}).Times(3)

	svc := NewEquipmentService(repo, config.BatchConfig{Delay: delay, MaxQuantity: 50}, nil, zap.NewNop())
	result, err := svc.CreateBatch(context.Background(), wheelchairs(3))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Succeeded)

	require.Len(t, starts, 3)
	for i := 1; i < len(starts); i++ {
		gap := starts[i].Sub(ends[i-1])
		assert.GreaterOrEqual(t, gap, delay-time.Millisecond, "gap before item %d", i)
	}
}

func TestCreateBatch_CancelledMarksRemainingFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEquipmentRepositoryInterface(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo.EXPECT().CreateEquipment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, dto.EquipmentDetailsDTO) (*entities.MedicalEquipment, error) {
			cancel()
			return &entities.MedicalEquipment{ID: 1}, nil
		}).Times(1)

	svc := NewEquipmentService(repo, config.BatchConfig{Delay: time.Hour, MaxQuantity: 50}, nil, zap.NewNop())
	result, err := svc.CreateBatch(ctx, wheelchairs(3))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, []int{1, 2}, []int{result.Errors[0].Index, result.Errors[1].Index})
}

func TestCreateBatch_QuantityBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEquipmentRepositoryInterface(ctrl)
	svc := NewEquipmentService(repo, config.BatchConfig{MaxQuantity: 50}, nil, zap.NewNop())

	for _, q := range []int{0, 51} {
		_, err := svc.CreateBatch(context.Background(), wheelchairs(q))
		var verr *apperrors.ValidationError
		require.True(t, errors.As(err, &verr), "quantity %d", q)
		assert.Contains(t, verr.Fields, "quantity")
	}
}

func TestCreateBatch_RaisedMaxQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEquipmentRepositoryInterface(ctrl)
	repo.EXPECT().CreateEquipment(gomock.Any(), gomock.Any()).
		Return(&entities.MedicalEquipment{ID: 1}, nil).Times(51)

	svc := NewEquipmentService(repo, config.BatchConfig{MaxQuantity: 60}, nil, zap.NewNop())
	result, err := svc.CreateBatch(context.Background(), wheelchairs(51))
	require.NoError(t, err)
	assert.Equal(t, 51, result.Succeeded)
}

func TestGetEquipment_SummaryCoversFilteredSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEquipmentRepositoryInterface(ctrl)
	repo.EXPECT().GetEquipment(gomock.Any()).Return([]entities.MedicalEquipment{
		{ID: 1, Status: "available", MonetaryValue: 100},
		{ID: 2, Status: "available", MonetaryValue: 50},
		{ID: 3, Status: "broken", MonetaryValue: 10},
	}, nil)

	svc := NewEquipmentService(repo, config.BatchConfig{}, nil, zap.NewNop())
	page, summary, err := svc.GetEquipment(context.Background(), listingQuery(1, 1))
	require.NoError(t, err)

	assert.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 160, summary.TotalValue, 0.001)
	assert.Equal(t, 2, summary.ByStatus["available"])
}
