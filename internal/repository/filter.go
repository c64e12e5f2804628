package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/evgeniy-krivenko/notebook/internal/query"
)

var noteColumns = []string{
	"n.id",
	"n.owner_id",
	"n.title",
	"n.content",
	"n.category_id",
	"n.is_pinned",
	"n.is_archived",
	"n.revision",
	"n.created_at",
	"n.updated_at",
	"n.deleted_at",
}

const noteReturning = "RETURNING id, owner_id, title, content, category_id, is_pinned, is_archived, " +
	"revision, created_at, updated_at, deleted_at"

// Pinned notes first, then most recently updated. id keeps pages stable
// when two notes share updated_at.
var noteOrder = []string{"n.is_pinned DESC", "n.updated_at DESC", "n.id DESC"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func noteFilter(spec query.Spec) sq.And {
	where := sq.And{sq.Eq{"n.owner_id": spec.OwnerID}}

	if spec.ExcludeDeleted {
		where = append(where, sq.Eq{"n.deleted_at": nil})
	}

	if !spec.IncludeArchived {
		where = append(where, sq.Eq{"n.is_archived": false})
	}

	if spec.HasCategory() {
		where = append(where, sq.Eq{"n.category_id": spec.CategoryID})
	}

	if spec.HasSearch() {
		pattern := "%" + likeEscaper.Replace(spec.Search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"n.title": pattern},
			sq.ILike{"n.content": pattern},
		})
	}

	return where
}

func listNotesQuery(spec query.Spec) sq.SelectBuilder {
	return psql.Select(noteColumns...).
		From("notes n").
		Where(noteFilter(spec)).
		OrderBy(noteOrder...).
		Limit(spec.Limit).
		Offset(spec.Offset)
}

func countNotesQuery(spec query.Spec) sq.SelectBuilder {
	return psql.Select("count(*)").
		From("notes n").
		Where(noteFilter(spec))
}
