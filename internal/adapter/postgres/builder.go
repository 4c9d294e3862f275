package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// Builder is the squirrel statement builder with PostgreSQL placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ContainsPattern turns s into an ILIKE pattern matching s anywhere,
// with LIKE wildcards in s escaped.
func ContainsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// ApplyFilter adds the tag/category/level conditions and paging of f.
// Category is only applied when withCategory is set.
func ApplyFilter(b squirrel.SelectBuilder, f domain.Filter, withCategory bool) squirrel.SelectBuilder {
	f = f.Normalized()
	if f.Tag != "" {
		b = b.Where(squirrel.ILike{"tags": ContainsPattern(f.Tag)})
	}
	if withCategory && f.Category != "" {
		b = b.Where(squirrel.Eq{"category": f.Category})
	}
	if f.Level != "" {
		b = b.Where("lower(level) = lower(?)", f.Level)
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}
	return b
}

// MatchAny returns an OR of case-insensitive substring matches on columns,
// plus a match against any element of the translations array.
func MatchAny(q string, columns ...string) squirrel.Sqlizer {
	pattern := ContainsPattern(strings.TrimSpace(q))
	or := squirrel.Or{}
	for _, c := range columns {
		or = append(or, squirrel.ILike{c: pattern})
	}
	return append(or, squirrel.Expr("EXISTS (SELECT 1 FROM unnest(translations) AS t WHERE t ILIKE ?)", pattern))
}

// Get runs the query built by b and scans one row into dst.
func Get(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, sql, args...)
}

// Select runs the query built by b and scans all rows into dst.
func Select(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// Exec runs the statement built by b and returns the affected row count.
func Exec(ctx context.Context, q Querier, b squirrel.Sqlizer) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Count returns the number of rows in table.
func Count(ctx context.Context, q Querier, table string) (int, error) {
	var n int
	sql, args, err := Builder.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// SetOptional adds "col = value" to an update, writing NULL for ptr("").
func SetOptional(b squirrel.UpdateBuilder, col string, v *string) squirrel.UpdateBuilder {
	if v == nil {
		return b
	}
	if strings.TrimSpace(*v) == "" {
		return b.Set(col, nil)
	}
	return b.Set(col, strings.TrimSpace(*v))
}

// SetRequired adds "col = value" to an update when v is non-nil.
func SetRequired(b squirrel.UpdateBuilder, col string, v *string) squirrel.UpdateBuilder {
	if v == nil {
		return b
	}
	return b.Set(col, strings.TrimSpace(*v))
}
