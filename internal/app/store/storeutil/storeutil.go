// internal/app/store/storeutil/storeutil.go
package storeutil

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit is the page size used when none is requested.
const DefaultLimit = 20

// ClampPage normalizes a 1-based page and a page size against maxLimit.
func ClampPage(page, limit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// Paginate returns *options.FindOptions with skip/limit given a 1-based page,
// sorted newest-first by created_at.
func Paginate(limit, page int64) *options.FindOptions {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = 1
	}
	sk := (page - 1) * limit
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(sk)
}

// TextSearch adds a case-insensitive substring match over the given fields,
// combined with OR. The query is regex-escaped so user input is matched
// literally.
func TextSearch(filter bson.M, q string, fields ...string) {
	if q == "" || len(fields) == 0 {
		return
	}
	quoted := regexp.QuoteMeta(q)
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": quoted, "$options": "i"}})
	}
	filter["$or"] = or
}

// DateRange adds an inclusive created_at range to the filter. Zero times are
// open ends.
func DateRange(filter bson.M, from, to time.Time) {
	if from.IsZero() && to.IsZero() {
		return
	}
	rng := bson.M{}
	if !from.IsZero() {
		rng["$gte"] = from
	}
	if !to.IsZero() {
		rng["$lte"] = to
	}
	filter["created_at"] = rng
}

// Pages returns the page count for a total at the given page size.
func Pages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
