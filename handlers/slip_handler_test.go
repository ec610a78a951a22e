package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"brcroadlines/derive"
	"brcroadlines/models"
	"brcroadlines/numbering"
	"brcroadlines/repository"
)

// stubSlipRepo keeps slips in a map and mirrors the real repos' duplicate
// check: a number clashes only when another record holds it.
type stubSlipRepo struct {
	slips  map[int64]*models.LoadingSlip
	nextID int64
}

func newStubSlipRepo() *stubSlipRepo {
	return &stubSlipRepo{slips: make(map[int64]*models.LoadingSlip), nextID: 1}
}

func (s *stubSlipRepo) SaveSlip(slip *models.LoadingSlip) error {
	for id, existing := range s.slips {
		if existing.SlipNumber == slip.SlipNumber && id != slip.ID {
			return repository.ErrDuplicateNumber
		}
	}
	derive.LoadingSlip(slip)
	if slip.ID == 0 {
		slip.ID = s.nextID
		s.nextID++
	} else if _, ok := s.slips[slip.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *slip
	s.slips[slip.ID] = &cp
	return nil
}

func (s *stubSlipRepo) GetSlips(filters map[string]interface{}, single bool) ([]*models.LoadingSlip, error) {
	var out []*models.LoadingSlip
	for _, slip := range s.slips {
		if id, ok := filters["id"]; ok {
			want, _ := id.(int64)
			if slip.ID != want {
				continue
			}
		}
		out = append(out, slip)
		if single {
			break
		}
	}
	return out, nil
}

func (s *stubSlipRepo) DeleteSlip(id int64) error {
	if _, ok := s.slips[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.slips, id)
	return nil
}

type stubCounterStore struct {
	last map[string]string
}

func (s *stubCounterStore) GetLastNumber(kind string) (string, error) { return s.last[kind], nil }
func (s *stubCounterStore) SetLastNumber(kind, number string) error {
	s.last[kind] = number
	return nil
}

func newTestSlipHandler() (*SlipHandler, *stubSlipRepo) {
	repo := newStubSlipRepo()
	gen := numbering.NewGenerator(&stubCounterStore{last: make(map[string]string)})
	return NewSlipHandler(repo, gen), repo
}

func postSlip(t *testing.T, h *SlipHandler, slip models.LoadingSlip) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(slip)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/slip", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.SaveSlip(rec, req)
	return rec
}

func TestSaveSlipGeneratesNumberAndDerives(t *testing.T) {
	h, repo := newTestSlipHandler()

	rec := postSlip(t, h, models.LoadingSlip{
		Party:     "Acme Traders",
		VehicleNo: "GJ01AB1234",
		Supplier:  "Sharma Transport",
		Freight:   100000,
		Advance:   20000,
		RTO:       5000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	saved := repo.slips[1]
	require.NotNil(t, saved)
	require.Regexp(t, `^LS\d{4}0001$`, saved.SlipNumber)
	require.Equal(t, models.Rupees(80000), saved.Balance)
	require.Equal(t, models.Rupees(105000), saved.TotalFreight)
}

func TestSaveSlipRejectsMissingFields(t *testing.T) {
	h, _ := newTestSlipHandler()

	rec := postSlip(t, h, models.LoadingSlip{Party: "Acme Traders"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveSlipRejectsDuplicateNumber(t *testing.T) {
	h, _ := newTestSlipHandler()

	first := models.LoadingSlip{
		Party: "Acme Traders", VehicleNo: "GJ01AB1234", Supplier: "Sharma Transport",
		SlipNumber: "LS25080042",
	}
	require.Equal(t, http.StatusCreated, postSlip(t, h, first).Code)

	dup := first
	rec := postSlip(t, h, dup)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
}

func TestSaveSlipEditKeepsOwnNumber(t *testing.T) {
	h, repo := newTestSlipHandler()

	require.Equal(t, http.StatusCreated, postSlip(t, h, models.LoadingSlip{
		Party: "Acme Traders", VehicleNo: "GJ01AB1234", Supplier: "Sharma Transport",
		SlipNumber: "LS25080042",
	}).Code)

	// Re-saving the same record with its own number is not a duplicate.
	edit := *repo.slips[1]
	edit.Freight = 75000
	rec := postSlip(t, h, edit)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, models.Rupees(75000), repo.slips[1].Freight)
}

func TestDeleteSlipArmThenConfirm(t *testing.T) {
	h, repo := newTestSlipHandler()

	require.Equal(t, http.StatusCreated, postSlip(t, h, models.LoadingSlip{
		Party: "Acme Traders", VehicleNo: "GJ01AB1234", Supplier: "Sharma Transport",
	}).Code)
	require.Len(t, repo.slips, 1)

	del := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/slip?id=1", nil)
		rec := httptest.NewRecorder()
		h.DeleteSlip(rec, req)
		return rec
	}

	// First call only arms.
	rec := del()
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Len(t, repo.slips, 1)

	// Second call within the window deletes.
	rec = del()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Empty(t, repo.slips)
}
