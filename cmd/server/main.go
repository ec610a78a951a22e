package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"brcroadlines/config"
	"brcroadlines/db"
	"brcroadlines/db/mongo"
	"brcroadlines/db/postgres"
	"brcroadlines/handlers"
	"brcroadlines/numbering"
	"brcroadlines/repository"
	"brcroadlines/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	// Run migrations (for Postgres)
	db.RunMigrations()

	var store db.DB
	var slipRepo repository.LoadingSlipRepository
	var memoRepo repository.MemoRepository
	var billRepo repository.BillRepository
	var bankingRepo repository.BankingRepository
	var partyRepo repository.PartyRepository
	var supplierRepo repository.SupplierRepository
	var counterRepo repository.CounterRepository
	var profileRepo repository.ProfileRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		store = pg

		slipRepo = repository.NewPostgresSlipRepo(pg.Conn)
		memoRepo = repository.NewPostgresMemoRepo(pg.Conn)
		billRepo = repository.NewPostgresBillRepo(pg.Conn)
		bankingRepo = repository.NewPostgresBankingRepo(pg.Conn)
		partyRepo = repository.NewPostgresPartyRepo(pg.Conn)
		supplierRepo = repository.NewPostgresSupplierRepo(pg.Conn)
		counterRepo = repository.NewPostgresCounterRepo(pg.Conn)
		profileRepo = repository.NewPostgresProfileRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		store = mg

		slipRepo = repository.NewMongoSlipRepo(mg.Client)
		memoRepo = repository.NewMongoMemoRepo(mg.Client)
		billRepo = repository.NewMongoBillRepo(mg.Client)
		bankingRepo = repository.NewMongoBankingRepo(mg.Client)
		partyRepo = repository.NewMongoPartyRepo(mg.Client)
		supplierRepo = repository.NewMongoSupplierRepo(mg.Client)
		counterRepo = repository.NewMongoCounterRepo(mg.Client)
		profileRepo = repository.NewMongoProfileRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}
	defer store.Disconnect()

	// Document numbering shares one generator across handlers so the
	// mutex actually serializes all allocations.
	numbers := numbering.NewGenerator(counterRepo)

	// Handlers
	slipHandler := handlers.NewSlipHandler(slipRepo, numbers)
	memoHandler := handlers.NewMemoHandler(memoRepo, slipRepo, numbers)
	billHandler := handlers.NewBillHandler(billRepo, slipRepo, numbers)
	bankingHandler := handlers.NewBankingHandler(bankingRepo)
	contactHandler := handlers.NewContactHandler(partyRepo, supplierRepo)
	ledgerHandler := handlers.NewLedgerHandler(billRepo, memoRepo, bankingRepo)
	profileHandler := handlers.NewProfileHandler(profileRepo)

	// PDF handler with combined repository
	pdfRepo := &repository.PDFRepository{
		SlipRepo:    slipRepo,
		MemoRepo:    memoRepo,
		BillRepo:    billRepo,
		ProfileRepo: profileRepo,
	}
	pdfHandler := handlers.NewPDFHandler(pdfRepo, cfg.PDFSavePath)

	routes.SetupRoutes(slipHandler, memoHandler, billHandler, bankingHandler,
		contactHandler, ledgerHandler, profileHandler, pdfHandler)

	logrus.Infof("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		panic(err)
	}
}
