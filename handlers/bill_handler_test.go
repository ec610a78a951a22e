package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"brcroadlines/derive"
	"brcroadlines/models"
	"brcroadlines/numbering"
	"brcroadlines/repository"
)

// stubBillRepo keeps bills in a map and mirrors the real repos' one-way
// MarkReceived: the first call freezes the current net amount, later calls
// change nothing.
type stubBillRepo struct {
	bills  map[int64]*models.Bill
	nextID int64
}

func newStubBillRepo() *stubBillRepo {
	return &stubBillRepo{bills: make(map[int64]*models.Bill), nextID: 1}
}

func (s *stubBillRepo) SaveBill(bill *models.Bill) error {
	for id, existing := range s.bills {
		if existing.BillNumber == bill.BillNumber && id != bill.ID {
			return repository.ErrDuplicateNumber
		}
	}
	derive.Bill(bill)
	if bill.ID == 0 {
		bill.ID = s.nextID
		s.nextID++
	} else if _, ok := s.bills[bill.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *bill
	s.bills[bill.ID] = &cp
	return nil
}

func (s *stubBillRepo) GetBills(filters map[string]interface{}, single bool) ([]*models.Bill, error) {
	var out []*models.Bill
	for _, b := range s.bills {
		if id, ok := filters["id"]; ok {
			want, _ := id.(int64)
			if b.ID != want {
				continue
			}
		}
		out = append(out, b)
		if single {
			break
		}
	}
	return out, nil
}

func (s *stubBillRepo) MarkReceived(id int64, t time.Time) error {
	b, ok := s.bills[id]
	if !ok {
		return repository.ErrNotFound
	}
	if b.IsReceived {
		return nil
	}
	b.IsReceived = true
	b.ReceiptDate = &t
	amt := b.NetAmount
	b.ReceiptAmount = &amt
	return nil
}

func (s *stubBillRepo) UpdatePODImage(id int64, url string) error {
	b, ok := s.bills[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.PODImage = &url
	return nil
}

func (s *stubBillRepo) DeleteBill(id int64) error {
	if _, ok := s.bills[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.bills, id)
	return nil
}

func newTestBillHandler() (*BillHandler, *stubBillRepo) {
	repo := newStubBillRepo()
	gen := numbering.NewGenerator(&stubCounterStore{last: make(map[string]string)})
	return NewBillHandler(repo, newStubSlipRepo(), gen), repo
}

func postBill(t *testing.T, h *BillHandler, bill models.Bill) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(bill)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/bill", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.SaveBill(rec, req)
	return rec
}

func TestMarkReceivedCapturesNetAmount(t *testing.T) {
	h, repo := newTestBillHandler()

	rec := postBill(t, h, models.Bill{
		Party:      "Acme Traders",
		BillAmount: 105000,
		Mamool:     500,
		TDS:        1000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, models.Rupees(103500), repo.bills[1].NetAmount)

	req := httptest.NewRequest(http.MethodPut, "/bill/mark-received?id=1", nil)
	rec = httptest.NewRecorder()
	h.MarkReceived(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	b := repo.bills[1]
	require.True(t, b.IsReceived)
	require.NotNil(t, b.ReceiptDate)
	require.NotNil(t, b.ReceiptAmount)
	require.Equal(t, models.Rupees(103500), *b.ReceiptAmount)
}

func TestMarkReceivedIsOneWay(t *testing.T) {
	h, repo := newTestBillHandler()

	require.Equal(t, http.StatusCreated, postBill(t, h, models.Bill{
		Party:      "Acme Traders",
		BillAmount: 105000,
		Mamool:     500,
		TDS:        1000,
	}).Code)

	mark := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/bill/mark-received?id=1", nil)
		rec := httptest.NewRecorder()
		h.MarkReceived(rec, req)
		return rec
	}
	require.Equal(t, http.StatusOK, mark().Code)

	firstDate := *repo.bills[1].ReceiptDate
	firstAmount := *repo.bills[1].ReceiptAmount

	// A second mark succeeds but changes nothing, even if the derived net
	// has shifted in the meantime.
	repo.bills[1].NetAmount = 999999
	require.Equal(t, http.StatusOK, mark().Code)

	require.True(t, repo.bills[1].IsReceived)
	require.Equal(t, firstDate, *repo.bills[1].ReceiptDate)
	require.Equal(t, firstAmount, *repo.bills[1].ReceiptAmount)
}

func TestMarkReceivedUnknownBill(t *testing.T) {
	h, _ := newTestBillHandler()

	req := httptest.NewRequest(http.MethodPut, "/bill/mark-received?id=42", nil)
	rec := httptest.NewRecorder()
	h.MarkReceived(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
