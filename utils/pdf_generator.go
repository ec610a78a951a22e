package utils

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"brcroadlines/models"
	"brcroadlines/repository"
)

var pdfFuncs = template.FuncMap{
	"inr": func(v models.Rupees) string { return FormatCurrency(float64(v)) },
}

// GenerateSlipPDF renders a loading slip to PDF bytes. Returns nil bytes
// when no slip exists for the id.
func GenerateSlipPDF(repo *repository.PDFRepository, slipID int64) ([]byte, error) {
	profile, err := repo.GetProfileForPDF()
	if err != nil {
		return nil, err
	}
	slip, err := repo.GetSlipForPDF(slipID)
	if err != nil || slip == nil {
		return nil, err
	}

	data := models.SlipPDFData{
		Company:  profile,
		Slip:     slip,
		Contacts: formatContacts(profile),
		Date:     formatDocDate(slip.Date),
	}
	return renderDocumentPDF("templates/loading_slip.html", data)
}

// GenerateMemoPDF renders a memo to PDF bytes.
func GenerateMemoPDF(repo *repository.PDFRepository, memoID int64) ([]byte, error) {
	profile, err := repo.GetProfileForPDF()
	if err != nil {
		return nil, err
	}
	memo, err := repo.GetMemoForPDF(memoID)
	if err != nil || memo == nil {
		return nil, err
	}

	data := models.MemoPDFData{
		Company:        profile,
		Memo:           memo,
		Contacts:       formatContacts(profile),
		Date:           formatDocDate(memo.Date),
		NetAmountWords: NumberToCurrencyWords(float64(memo.NetAmount)),
	}
	return renderDocumentPDF("templates/memo.html", data)
}

// GenerateBillPDF renders a bill to PDF bytes.
func GenerateBillPDF(repo *repository.PDFRepository, billID int64) ([]byte, error) {
	profile, err := repo.GetProfileForPDF()
	if err != nil {
		return nil, err
	}
	bill, err := repo.GetBillForPDF(billID)
	if err != nil || bill == nil {
		return nil, err
	}

	data := models.BillPDFData{
		Company:        profile,
		Bill:           bill,
		Contacts:       formatContacts(profile),
		Date:           formatDocDate(bill.Date),
		NetAmountWords: NumberToCurrencyWords(float64(bill.NetAmount)),
	}
	return renderDocumentPDF("templates/bill.html", data)
}

func formatDocDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02-Jan-2006")
}

func formatContacts(profile *models.CompanyProfile) string {
	if profile == nil {
		return ""
	}
	contacts := ""
	for _, m := range profile.Mobile {
		contacts += m.Number + "(" + m.Label + "), "
	}
	if len(contacts) > 2 {
		contacts = contacts[:len(contacts)-2]
	}
	return contacts
}

// renderDocumentPDF executes the template, wraps it in the A4 page shell and
// prints it through headless Chrome.
func renderDocumentPDF(templatePath string, data interface{}) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(templatePath)).Funcs(pdfFuncs).ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.document {
			page-break-inside: avoid;
			border: none;
		}
		</style>
		</head>
		<body><div class='document'>` + body.String() + `</div></body></html>`

	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, fmt.Sprintf("doc_%s.html", time.Now().Format("20060102150405")))
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
