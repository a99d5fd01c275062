// Package pathutil parses path parameters and normalizes request paths for
// metric labels.
package pathutil

import (
	"strconv"

	"ncnews/internal/domain/entity"
)

// ParseID parses a positive integer path parameter such as article_id. The
// id columns are SERIAL, so values beyond int32 are rejected here along with
// everything else that is not a positive integer, as an
// *entity.ValidationError on field.
func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, &entity.ValidationError{Field: field, Message: "must be a positive integer"}
	}
	return id, nil
}
