// Package paging implements keyset (cursor) pagination over Mongo
// collections sorted on a folded text key with _id as tiebreak. Pages
// are fetched with one look-ahead row so the handler can tell whether a
// further page exists without a count query.
package paging

import (
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PageSize is the number of rows in a directory page.
const PageSize = 50

// LimitPlusOne returns PageSize+1 as int64 for look-ahead fetches.
func LimitPlusOne() int64 { return int64(PageSize + 1) }

// Direction indicates the pagination direction.
type Direction int

const (
	Forward  Direction = iota // sort ascending, cursor bounds from below
	Backward                  // sort descending, cursor bounds from above
)

// KeysetConfig holds a decoded cursor and the derived query shape.
type KeysetConfig struct {
	Direction Direction
	SortOrder int // 1 ascending, -1 descending
	Cursor    *wafflemongo.Cursor
}

// ConfigureKeyset decodes the before/after cursor pair into a config.
// A "before" cursor wins when both are present.
func ConfigureKeyset(before, after string) KeysetConfig {
	cfg := KeysetConfig{Direction: Forward, SortOrder: 1}

	if before != "" {
		cfg.Direction = Backward
		cfg.SortOrder = -1
		if c, ok := wafflemongo.DecodeCursor(before); ok {
			cfg.Cursor = &c
		}
	} else if after != "" {
		if c, ok := wafflemongo.DecodeCursor(after); ok {
			cfg.Cursor = &c
		}
	}

	return cfg
}

// ApplyToFind sets sort and look-ahead limit on find options.
func (cfg KeysetConfig) ApplyToFind(find *options.FindOptions, sortField string) {
	find.SetSort(bson.D{
		{Key: sortField, Value: cfg.SortOrder},
		{Key: "_id", Value: cfg.SortOrder},
	}).SetLimit(LimitPlusOne())
}

// KeysetWindow returns the cursor condition for the query filter, or
// nil when no cursor is set.
func (cfg KeysetConfig) KeysetWindow(sortField string) bson.M {
	if cfg.Cursor == nil {
		return nil
	}
	dir := "gt"
	if cfg.Direction == Backward {
		dir = "lt"
	}
	return wafflemongo.KeysetWindow(sortField, dir, cfg.Cursor.CI, cfg.Cursor.ID)
}

// Result reports whether pages exist on either side of the one fetched.
type Result struct {
	HasPrev bool
	HasNext bool
}

// TrimPage trims a look-ahead fetch down to PageSize in place and
// reports the neighbors. Backward pages drop their extra row from the
// front; forward pages from the back.
func TrimPage[T any](rows *[]T, before, after string) Result {
	var res Result

	if before != "" {
		if len(*rows) > PageSize {
			*rows = (*rows)[1:]
			res.HasPrev = true
		}
		res.HasNext = true
	} else {
		if len(*rows) > PageSize {
			*rows = (*rows)[:PageSize]
			res.HasNext = true
		}
		res.HasPrev = after != ""
	}

	return res
}

// Reverse restores display order after a backward fetch.
func Reverse[T any](rows []T) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}

// BuildCursors encodes prev/next cursors from the page's edge rows.
func BuildCursors[T any](rows []T, keyFn func(T) string, idFn func(T) primitive.ObjectID) (prev, next string) {
	if len(rows) == 0 {
		return "", ""
	}
	first, last := rows[0], rows[len(rows)-1]
	return wafflemongo.EncodeCursor(keyFn(first), idFn(first)),
		wafflemongo.EncodeCursor(keyFn(last), idFn(last))
}
