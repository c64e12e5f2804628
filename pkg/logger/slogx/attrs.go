package slogx

import "log/slog"

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("err", "<nil>")
	}

	return slog.String("err", err.Error())
}

func UserId(id string) slog.Attr {
	return slog.String("user_id", id)
}

func NoteId(id string) slog.Attr {
	return slog.String("note_id", id)
}

func CategoryId(id string) slog.Attr {
	return slog.String("category_id", id)
}
