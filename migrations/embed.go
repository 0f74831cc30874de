// Package migrations embeds the SQL schema migrations for each storage
// backend. Files follow the NNNN_name.sql convention and are applied in
// version order.
package migrations

import "embed"

//go:embed sqlite postgres
var FS embed.FS
