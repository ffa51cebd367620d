package sql

import (
	"embed"
)

// Migrations holds the schema DDL, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/peek_counter.sql
var PeekCounter string

//go:embed queries/lock_counter.sql
var LockCounter string

//go:embed queries/set_counter.sql
var SetCounter string

//go:embed queries/ensure_counter.sql
var EnsureCounter string
