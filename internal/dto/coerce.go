package dto

import (
	"database/sql"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// The sync pipeline leaves plenty of nullable and loosely typed columns
// behind. Zero-defaulting lives here, once, so every response shape applies
// the same policy.

func stringOr(s sql.NullString, def string) string {
	if s.Valid && s.String != "" {
		return s.String
	}
	return def
}

func stringOrEmpty(s sql.NullString) string {
	if s.Valid {
		return s.String
	}
	return ""
}

func int64OrZero(n sql.NullInt64) int64 {
	if n.Valid {
		return n.Int64
	}
	return 0
}

func floatOrZero(d decimal.NullDecimal) float64 {
	if d.Valid {
		return d.Decimal.InexactFloat64()
	}
	return 0
}

// parsePrice turns a stored price string into a float, recovering from
// anything unparsable (or non-finite) with 0.
func parsePrice(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func nullPriceOrZero(s sql.NullString) float64 {
	if !s.Valid {
		return 0
	}
	return parsePrice(s.String)
}
