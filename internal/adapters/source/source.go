// Package source selects where the four sales tables are read from
package source

import (
	"strings"

	"salesboard/internal/adapters/source/chsource"
	"salesboard/internal/adapters/source/csvsource"
	"salesboard/internal/adapters/source/pgsource"
	"salesboard/internal/core/facts"
	perr "salesboard/internal/platform/errors"
	"salesboard/internal/platform/store"
)

// Kind names a source backend
type Kind string

// Supported kinds
const (
	KindCSV        Kind = "csv"
	KindPostgres   Kind = "pg"
	KindClickhouse Kind = "ch"
)

// ParseKind accepts the kind names case insensitively, empty means csv
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindCSV, nil
	case KindCSV, KindPostgres, KindClickhouse:
		return k, nil
	case "postgres":
		return KindPostgres, nil
	case "clickhouse":
		return KindClickhouse, nil
	}
	return "", perr.Newf(perr.ErrorCodeInvalidArgument, "unknown source %q (want csv, pg or ch)", s)
}

// Config selects and parameterizes a source
type Config struct {
	Kind Kind
	Dir  string // csv only
}

// Open returns the source cfg names
// database kinds need the matching backend enabled on st
func Open(cfg Config, st *store.Store) (facts.Source, error) {
	switch cfg.Kind {
	case KindCSV, "":
		if cfg.Dir == "" {
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "csv source needs a data directory")
		}
		src := csvsource.New(cfg.Dir)
		if err := src.Check(); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "csv source")
		}
		return src, nil
	case KindPostgres:
		if st == nil || st.PG == nil {
			return nil, perr.Newf(perr.ErrorCodeUnavailable, "pg source needs postgres enabled")
		}
		return pgsource.New(st.PG), nil
	case KindClickhouse:
		if st == nil || st.CH == nil {
			return nil, perr.Newf(perr.ErrorCodeUnavailable, "ch source needs clickhouse enabled")
		}
		return chsource.New(st.CH), nil
	}
	return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "unknown source %q", cfg.Kind)
}
