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

// stubMemoRepo mirrors the real repos' one-way MarkPaid.
type stubMemoRepo struct {
	memos  map[int64]*models.Memo
	nextID int64
}

func newStubMemoRepo() *stubMemoRepo {
	return &stubMemoRepo{memos: make(map[int64]*models.Memo), nextID: 1}
}

func (s *stubMemoRepo) SaveMemo(memo *models.Memo) error {
	for id, existing := range s.memos {
		if existing.MemoNumber == memo.MemoNumber && id != memo.ID {
			return repository.ErrDuplicateNumber
		}
	}
	derive.Memo(memo)
	if memo.ID == 0 {
		memo.ID = s.nextID
		s.nextID++
	} else if _, ok := s.memos[memo.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *memo
	s.memos[memo.ID] = &cp
	return nil
}

func (s *stubMemoRepo) GetMemos(filters map[string]interface{}, single bool) ([]*models.Memo, error) {
	var out []*models.Memo
	for _, m := range s.memos {
		out = append(out, m)
		if single {
			break
		}
	}
	return out, nil
}

func (s *stubMemoRepo) MarkPaid(id int64, t time.Time) error {
	m, ok := s.memos[id]
	if !ok {
		return repository.ErrNotFound
	}
	if m.IsPaid {
		return nil
	}
	m.IsPaid = true
	m.PaymentDate = &t
	amt := m.NetAmount
	m.PaymentAmount = &amt
	return nil
}

func (s *stubMemoRepo) DeleteMemo(id int64) error {
	if _, ok := s.memos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.memos, id)
	return nil
}

func newTestMemoHandler() (*MemoHandler, *stubMemoRepo) {
	repo := newStubMemoRepo()
	gen := numbering.NewGenerator(&stubCounterStore{last: make(map[string]string)})
	return NewMemoHandler(repo, newStubSlipRepo(), gen), repo
}

func postMemo(t *testing.T, h *MemoHandler, memo models.Memo) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(memo)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/memo", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.SaveMemo(rec, req)
	return rec
}

func TestMarkPaidCapturesNetAmountOnce(t *testing.T) {
	h, repo := newTestMemoHandler()

	rec := postMemo(t, h, models.Memo{
		Supplier: "Sharma Transport",
		Freight:  100000,
		RTO:      5000,
		Mamool:   500,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, models.Rupees(6000), repo.memos[1].Commission)
	require.Equal(t, models.Rupees(98500), repo.memos[1].NetAmount)

	mark := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/memo/mark-paid?id=1", nil)
		rec := httptest.NewRecorder()
		h.MarkPaid(rec, req)
		return rec
	}
	require.Equal(t, http.StatusOK, mark().Code)

	m := repo.memos[1]
	require.True(t, m.IsPaid)
	require.NotNil(t, m.PaymentDate)
	require.Equal(t, models.Rupees(98500), *m.PaymentAmount)

	// The transition is set-once.
	firstDate := *m.PaymentDate
	m.NetAmount = 1
	require.Equal(t, http.StatusOK, mark().Code)
	require.Equal(t, firstDate, *repo.memos[1].PaymentDate)
	require.Equal(t, models.Rupees(98500), *repo.memos[1].PaymentAmount)
}

func TestMarkPaidUnknownMemo(t *testing.T) {
	h, _ := newTestMemoHandler()

	req := httptest.NewRequest(http.MethodPut, "/memo/mark-paid?id=9", nil)
	rec := httptest.NewRecorder()
	h.MarkPaid(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
