// Package database manages the connection to the relational store holding
// election results.
//
// It wraps GORM with a MySQL driver, applying connection pooling and strict
// timeouts. The connection is verified with a ping before being handed out,
// so callers can treat a returned *gorm.DB as live.
//
// The schema itself (elections and election_precincts tables) is declared by
// the export feature's models; this package only knows how to connect.
package database
