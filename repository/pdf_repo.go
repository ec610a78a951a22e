package repository

import "brcroadlines/models"

// PDFRepository bundles the lookups the PDF exporter needs: a fully-derived
// document of any kind plus the company profile for the letterhead.
type PDFRepository struct {
	SlipRepo    LoadingSlipRepository
	MemoRepo    MemoRepository
	BillRepo    BillRepository
	ProfileRepo ProfileRepository
}

func (r *PDFRepository) GetSlipForPDF(id int64) (*models.LoadingSlip, error) {
	slips, err := r.SlipRepo.GetSlips(map[string]interface{}{"id": id}, true)
	if err != nil || len(slips) == 0 {
		return nil, err
	}
	return slips[0], nil
}

func (r *PDFRepository) GetMemoForPDF(id int64) (*models.Memo, error) {
	memos, err := r.MemoRepo.GetMemos(map[string]interface{}{"id": id}, true)
	if err != nil || len(memos) == 0 {
		return nil, err
	}
	return memos[0], nil
}

func (r *PDFRepository) GetBillForPDF(id int64) (*models.Bill, error) {
	bills, err := r.BillRepo.GetBills(map[string]interface{}{"id": id}, true)
	if err != nil || len(bills) == 0 {
		return nil, err
	}
	return bills[0], nil
}

func (r *PDFRepository) GetProfileForPDF() (*models.CompanyProfile, error) {
	return r.ProfileRepo.GetProfile()
}
