package routes

import (
	"net/http"

	"brcroadlines/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	slipHandler *handlers.SlipHandler,
	memoHandler *handlers.MemoHandler,
	billHandler *handlers.BillHandler,
	bankingHandler *handlers.BankingHandler,
	contactHandler *handlers.ContactHandler,
	ledgerHandler *handlers.LedgerHandler,
	profileHandler *handlers.ProfileHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// Loading slip routes
	http.Handle("/slip", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			slipHandler.SaveSlip(w, r)
		case http.MethodGet:
			slipHandler.GetAllSlips(w, r)
		case http.MethodDelete:
			slipHandler.DeleteSlip(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Get slip by ID
	http.Handle("/slip/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/slip/"):]
		if id != "" {
			slipHandler.GetSlipByID(w, r, id)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))))

	// Memo routes
	http.Handle("/memo", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			memoHandler.SaveMemo(w, r)
		case http.MethodGet:
			memoHandler.GetAllMemos(w, r)
		case http.MethodDelete:
			memoHandler.DeleteMemo(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
	http.Handle("/memo/from-slip", withCORS(http.HandlerFunc(handlers.RecoverWrapper(memoHandler.FromSlip))))
	http.Handle("/memo/mark-paid", withCORS(http.HandlerFunc(handlers.RecoverWrapper(memoHandler.MarkPaid))))

	// Bill routes
	http.Handle("/bill", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			billHandler.SaveBill(w, r)
		case http.MethodGet:
			billHandler.GetAllBills(w, r)
		case http.MethodDelete:
			billHandler.DeleteBill(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
	http.Handle("/bill/from-slip", withCORS(http.HandlerFunc(handlers.RecoverWrapper(billHandler.FromSlip))))
	http.Handle("/bill/mark-received", withCORS(http.HandlerFunc(handlers.RecoverWrapper(billHandler.MarkReceived))))
	http.Handle("/bill/pod", withCORS(http.HandlerFunc(handlers.RecoverWrapper(billHandler.UploadPOD))))

	// Banking routes
	http.Handle("/banking", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			bankingHandler.CreateEntry(w, r)
		case http.MethodGet:
			bankingHandler.GetEntries(w, r)
		case http.MethodDelete:
			bankingHandler.DeleteEntry(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Party and supplier routes
	http.Handle("/party", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			contactHandler.SaveParty(w, r)
		case http.MethodGet:
			contactHandler.GetParties(w, r)
		case http.MethodDelete:
			contactHandler.DeleteParty(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
	http.Handle("/supplier", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			contactHandler.SaveSupplier(w, r)
		case http.MethodGet:
			contactHandler.GetSuppliers(w, r)
		case http.MethodDelete:
			contactHandler.DeleteSupplier(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Ledger and dashboard
	http.Handle("/ledger", withCORS(http.HandlerFunc(handlers.RecoverWrapper(ledgerHandler.GetLedger))))
	http.Handle("/dashboard", withCORS(http.HandlerFunc(handlers.RecoverWrapper(ledgerHandler.GetDashboard))))

	// Company profile routes
	http.Handle("/profile", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			profileHandler.SaveProfile(w, r)
		case http.MethodGet:
			profileHandler.GetProfile(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// PDF routes
	http.Handle("/slip/pdf", withCORS(http.HandlerFunc(handlers.RecoverWrapper(pdfHandler.SlipPDF))))
	http.Handle("/memo/pdf", withCORS(http.HandlerFunc(handlers.RecoverWrapper(pdfHandler.MemoPDF))))
	http.Handle("/bill/pdf", withCORS(http.HandlerFunc(handlers.RecoverWrapper(pdfHandler.BillPDF))))
}
