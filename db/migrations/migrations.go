package migrations

import "embed"

// FS holds the SQL files of this directory for the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binary expects.
const Version = 1
