package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"brcroadlines/repository"
	"brcroadlines/utils"
)

// PDFHandler renders documents to PDF. The bytes are written under SavePath
// and mirrored to R2 on a best-effort basis before being streamed back.
type PDFHandler struct {
	Repo     *repository.PDFRepository
	SavePath string
}

func NewPDFHandler(repo *repository.PDFRepository, savePath string) *PDFHandler {
	return &PDFHandler{Repo: repo, SavePath: savePath}
}

func (h *PDFHandler) SlipPDF(w http.ResponseWriter, r *http.Request) {
	h.servePDF(w, r, "slip", utils.GenerateSlipPDF)
}

func (h *PDFHandler) MemoPDF(w http.ResponseWriter, r *http.Request) {
	h.servePDF(w, r, "memo", utils.GenerateMemoPDF)
}

func (h *PDFHandler) BillPDF(w http.ResponseWriter, r *http.Request) {
	h.servePDF(w, r, "bill", utils.GenerateBillPDF)
}

func (h *PDFHandler) servePDF(w http.ResponseWriter, r *http.Request, kind string,
	generate func(*repository.PDFRepository, int64) ([]byte, error)) {

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}

	pdfBytes, err := generate(h.Repo, id)
	if err != nil {
		logrus.WithFields(logrus.Fields{"kind": kind, "id": id}).Errorf("pdf generation failed: %v", err)
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if pdfBytes == nil {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("%s_%d.pdf", kind, id)

	if h.SavePath != "" {
		if err := os.MkdirAll(h.SavePath, 0755); err == nil {
			if err := os.WriteFile(filepath.Join(h.SavePath, filename), pdfBytes, 0644); err != nil {
				logrus.Warnf("could not save %s locally: %v", filename, err)
			}
		}
	}

	// R2 mirroring is best effort; a storage outage must not block the
	// download.
	if _, err := utils.UploadToR2(pdfBytes, filename, "application/pdf"); err != nil {
		logrus.Warnf("could not mirror %s to R2: %v", filename, err)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename="+filename)
	_, _ = w.Write(pdfBytes)
}
