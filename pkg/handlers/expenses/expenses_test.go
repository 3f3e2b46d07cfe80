package expenses_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/petty-cash-float/pkg/api"
	filemocks "github.com/chris/petty-cash-float/pkg/files/mocks"
	"github.com/chris/petty-cash-float/pkg/handlers/expenses"
	"github.com/chris/petty-cash-float/pkg/middleware"
	"github.com/chris/petty-cash-float/pkg/models"
	"github.com/chris/petty-cash-float/pkg/pettycash"
	"github.com/chris/petty-cash-float/pkg/storage"
	"github.com/chris/petty-cash-float/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// multipartRequest builds an expense submission with the given fields and
// attachment filenames.
func multipartRequest(t *testing.T, fields map[string]string, attachments []string) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		assert.NoError(t, writer.WriteField(key, value))
	}
	for _, name := range attachments {
		part, err := writer.CreateFormFile("attachments", name)
		assert.NoError(t, err)
		_, err = part.Write([]byte("fake file contents"))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/expenses", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(middleware.CompanyIDHeader, "company-a")
	req.Header.Set(middleware.UserIDHeader, "user-1")
	return req
}

func serve(h *expenses.ExpensesHandler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	middleware.RequireIdentity(http.HandlerFunc(h.RecordExpense)).ServeHTTP(rr, req)
	return rr
}

func TestRecordExpense(t *testing.T) {
	latest := &models.Cycle{Id: "cycle-1", CompanyId: "company-a", CycleNo: 1, Active: true}

	validFields := map[string]string{
		"item":         "stationery",
		"amount":       "750",
		"requested_by": "Maria",
	}

	t.Run("Success", func(t *testing.T) {
		created := &models.Expense{Id: "expense-1", CycleId: "cycle-1", Item: "stationery", Amount: 750, RequestedBy: "Maria"}

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetLatestCycle", mock.Anything, "company-a").Return(latest, nil)
		mockStorage.On("CreateExpense", mock.Anything, mock.Anything).Return(created, nil)

		h := expenses.NewExpensesHandler(pettycash.New(mockStorage, nil, nil), nil)

		rr := serve(h, multipartRequest(t, validFields, nil))

		assert.Equal(t, http.StatusCreated, rr.Code)

		var got api.Expense
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "stationery", got.Item)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Success With Attachments", func(t *testing.T) {
		created := &models.Expense{Id: "expense-1", CycleId: "cycle-1", Attachments: []string{"https://bucket.s3.amazonaws.com/receipt"}}

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetLatestCycle", mock.Anything, "company-a").Return(latest, nil)
		mockStorage.On("CreateExpense", mock.Anything, mock.MatchedBy(func(e *models.Expense) bool {
			return len(e.Attachments) == 1
		})).Return(created, nil)

		mockFiles := new(filemocks.Store)
		mockFiles.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("https://bucket.s3.amazonaws.com/receipt", nil).Once()

		h := expenses.NewExpensesHandler(pettycash.New(mockStorage, mockFiles, nil), nil)

		rr := serve(h, multipartRequest(t, validFields, []string{"receipt.pdf"}))

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockStorage.AssertExpectations(t)
		mockFiles.AssertExpectations(t)
	})

	t.Run("Invalid Amount Field", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		h := expenses.NewExpensesHandler(pettycash.New(mockStorage, nil, nil), nil)

		fields := map[string]string{"item": "stationery", "amount": "7.50", "requested_by": "Maria"}
		rr := serve(h, multipartRequest(t, fields, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "GetLatestCycle", mock.Anything, mock.Anything)
	})

	t.Run("Zero Amount", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		h := expenses.NewExpensesHandler(pettycash.New(mockStorage, nil, nil), nil)

		fields := map[string]string{"item": "stationery", "amount": "0", "requested_by": "Maria"}
		rr := serve(h, multipartRequest(t, fields, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "GetLatestCycle", mock.Anything, mock.Anything)
	})

	t.Run("Missing Item", func(t *testing.T) {
		h := expenses.NewExpensesHandler(pettycash.New(new(mocks.Storage), nil, nil), nil)

		fields := map[string]string{"amount": "750", "requested_by": "Maria"}
		rr := serve(h, multipartRequest(t, fields, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("No Cycle", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetLatestCycle", mock.Anything, "company-a").Return(nil, storage.ErrNoCycle)

		h := expenses.NewExpensesHandler(pettycash.New(mockStorage, nil, nil), nil)

		rr := serve(h, multipartRequest(t, validFields, nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}
