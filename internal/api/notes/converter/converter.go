package converter

import (
	"time"

	"google.golang.org/genproto/googleapis/type/datetime"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	v1 "github.com/evgeniy-krivenko/notebook/pkg/api/notes/v1"
)

func ConvertNoteToProto(note entity.Note) *v1.Note {
	return &v1.Note{
		Id:         note.ID,
		Title:      note.Title,
		Content:    note.Content,
		CategoryId: note.CategoryID,
		IsPinned:   note.IsPinned,
		IsArchived: note.IsArchived,
		Revision:   note.Revision,
		CreatedAt:  ConvertTimeToDateTime(note.CreatedAt),
		UpdatedAt:  ConvertTimeToDateTime(note.UpdatedAt),
	}
}

func ConvertNotesToProto(notes []entity.Note) []*v1.Note {
	result := make([]*v1.Note, 0, len(notes))
	for _, n := range notes {
		result = append(result, ConvertNoteToProto(n))
	}

	return result
}

func ConvertNotePageToProto(page entity.NotePage) *v1.ListNotesResponse {
	return &v1.ListNotesResponse{
		Items:     ConvertNotesToProto(page.Items),
		Total:     int64(page.Total),
		Page:      int64(page.Page),
		PageSize:  int64(page.PageSize),
		PageCount: int64(page.PageCount),
	}
}

func ConvertCategoryToProto(c entity.Category) *v1.Category {
	return &v1.Category{
		Id:        c.ID,
		Name:      c.Name,
		Color:     string(c.Color),
		NoteCount: int64(c.NoteCount),
		CreatedAt: ConvertTimeToDateTime(c.CreatedAt),
		UpdatedAt: ConvertTimeToDateTime(c.UpdatedAt),
	}
}

func ConvertCategoriesToProto(categories []entity.Category) []*v1.Category {
	result := make([]*v1.Category, 0, len(categories))
	for _, c := range categories {
		result = append(result, ConvertCategoryToProto(c))
	}

	return result
}

func ConvertRevisionToProto(r entity.RevisionResult) *v1.UpdateNoteContentResponse {
	return &v1.UpdateNoteContentResponse{
		Id:        r.ID,
		Revision:  r.Revision,
		UpdatedAt: ConvertTimeToDateTime(r.UpdatedAt),
	}
}

func ConvertEventToProto(ev entity.ChangeEvent) *v1.ChangeEvent {
	return &v1.ChangeEvent{
		Resource: string(ev.Resource),
		Id:       ev.ID,
		Action:   string(ev.Action),
	}
}

func ConvertDeleteRequestToResolution(req *v1.DeleteCategoryRequest) entity.DeleteResolution {
	return entity.DeleteResolution{
		ReassignTo: req.ReassignTo,
		Clear:      req.Clear,
	}
}

// ConvertTimeToDateTime emits the UTC wall clock.
func ConvertTimeToDateTime(t time.Time) *datetime.DateTime {
	if t.IsZero() {
		return nil
	}

	t = t.UTC()

	return &datetime.DateTime{
		Year:    int32(t.Year()),
		Month:   int32(t.Month()),
		Day:     int32(t.Day()),
		Hours:   int32(t.Hour()),
		Minutes: int32(t.Minute()),
		Seconds: int32(t.Second()),
		Nanos:   int32(t.Nanosecond()),
	}
}

func ConvertDateTimeToTime(dt *datetime.DateTime) time.Time {
	if dt == nil {
		return time.Time{}
	}

	return time.Date(
		int(dt.Year),
		time.Month(dt.Month),
		int(dt.Day),
		int(dt.Hours),
		int(dt.Minutes),
		int(dt.Seconds),
		int(dt.Nanos),
		time.UTC,
	)
}
