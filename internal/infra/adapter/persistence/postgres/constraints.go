package postgres

import (
	"ncnews/internal/domain/entity"
	"ncnews/internal/infra/db/pgerr"
)

// foreignKeyTargets maps schema constraint names to the resource they reference.
var foreignKeyTargets = map[string]string{
	"articles_topic_fkey":      "topic",
	"articles_author_fkey":     "user",
	"comments_author_fkey":     "user",
	"comments_article_id_fkey": "article",
}

// translateForeignKey turns a foreign-key violation on a known constraint into
// a NotFoundError for the referenced resource. keys supplies the offending
// value per resource. Any other error is returned unchanged.
func translateForeignKey(err error, keys map[string]interface{}) error {
	if !pgerr.Is(err, pgerr.ForeignKeyViolation) {
		return err
	}
	resource, ok := foreignKeyTargets[pgerr.Constraint(err)]
	if !ok {
		return err
	}
	return entity.NewNotFound(resource, keys[resource])
}
