package db

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// DB is the connection lifecycle shared by the Postgres and Mongo backends.
type DB interface {
	Connect() error
	Disconnect() error
}
