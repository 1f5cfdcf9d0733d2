package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"retail-cli/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, req *model.OrderRequest) (*model.OrderDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderDetails), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id uuid.UUID) (*model.OrderDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderDetails), args.Error(1)
}

func (m *MockOrderService) Cancel(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Complete(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()
	details := &model.OrderDetails{
		Order: model.Order{
			ID:          orderID,
			CustomerID:  1,
			TotalAmount: 24.48,
			Status:      model.OrderStatusPlaced,
			CreatedAt:   time.Now(),
		},
		Items: []model.OrderItem{
			{ProductID: 10, Quantity: 2, Price: 9.99},
			{ProductID: 11, Quantity: 1, Price: 4.50},
		},
	}

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.OrderDetails
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           `{"customerId":1,"items":[{"productId":10,"quantity":2},{"productId":11,"quantity":1}]}`,
			mockReturn:     details,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Insufficient stock",
			body:           `{"customerId":1,"items":[{"productId":10,"quantity":99}]}`,
			mockError:      model.ErrInsufficientStock,
			expectedStatus: http.StatusConflict,
			expectService:  true,
		},
		{
			name:           "Customer not found",
			body:           `{"customerId":99,"items":[{"productId":10,"quantity":1}]}`,
			mockError:      model.ErrCustomerNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid body",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()
	details := &model.OrderDetails{
		Order: model.Order{ID: orderID, CustomerID: 1, Status: model.OrderStatusPlaced},
	}

	tests := []struct {
		name           string
		pathID         string
		mockReturn     *model.OrderDetails
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			pathID:         orderID.String(),
			mockReturn:     details,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			pathID:         uuid.New().String(),
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid UUID",
			pathID:         "not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Get", mock.Anything, mock.AnythingOfType("uuid.UUID")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/orders/%s", tt.pathID), nil)
			req.SetPathValue("id", tt.pathID)
			w := httptest.NewRecorder()

			handler.Get(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_Cancel(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()
	cancelled := &model.Order{ID: orderID, CustomerID: 1, Status: model.OrderStatusCancelled}

	tests := []struct {
		name           string
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			mockReturn:     cancelled,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not cancellable",
			mockError:      model.ErrOrderNotCancellable,
			expectedStatus: http.StatusConflict,
			expectedCode:   model.ErrCodeOrderNotCancellable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, logger)

			mockService.On("Cancel", mock.Anything, orderID).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/orders/%s/cancel", orderID), nil)
			req.SetPathValue("id", orderID.String())
			w := httptest.NewRecorder()

			handler.Cancel(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
			}

			mockService.AssertExpectations(t)
		})
	}
}
