package models

// View models handed to the HTML templates for PDF export. Records must be
// fully derived before they reach the exporter.

type SlipPDFData struct {
	Company  *CompanyProfile
	Slip     *LoadingSlip
	Contacts string
	Date     string
}

type MemoPDFData struct {
	Company        *CompanyProfile
	Memo           *Memo
	Contacts       string
	Date           string
	NetAmountWords string
}

type BillPDFData struct {
	Company        *CompanyProfile
	Bill           *Bill
	Contacts       string
	Date           string
	NetAmountWords string
}
