package configs

// Store driver names accepted by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Store selects where session drafts are kept. The memory driver loses all
// data on restart; postgres uses the Psql section; sqlite writes a single
// local file at SQLitePath.
type Store struct {
	Driver     string `env:"DRIVER" envDefault:"memory"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"wizard.db"`
}
