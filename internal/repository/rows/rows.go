// Package rows holds the table row shapes scanned by pgx.
package rows

import "github.com/jackc/pgx/v5/pgtype"

type Note struct {
	ID         string             `db:"id"`
	OwnerID    string             `db:"owner_id"`
	Title      string             `db:"title"`
	Content    string             `db:"content"`
	CategoryID pgtype.Text        `db:"category_id"`
	IsPinned   bool               `db:"is_pinned"`
	IsArchived bool               `db:"is_archived"`
	Revision   int64              `db:"revision"`
	CreatedAt  pgtype.Timestamptz `db:"created_at"`
	UpdatedAt  pgtype.Timestamptz `db:"updated_at"`
	DeletedAt  pgtype.Timestamptz `db:"deleted_at"`
}

type Category struct {
	ID        string             `db:"id"`
	OwnerID   string             `db:"owner_id"`
	Name      string             `db:"name"`
	Color     string             `db:"color"`
	NoteCount int64              `db:"note_count"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
	UpdatedAt pgtype.Timestamptz `db:"updated_at"`
}

type Revision struct {
	ID        string             `db:"id"`
	Revision  int64              `db:"revision"`
	UpdatedAt pgtype.Timestamptz `db:"updated_at"`
}
