package notes

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/evgeniy-krivenko/notebook/internal/api/notes/converter"
	"github.com/evgeniy-krivenko/notebook/internal/ctxtr"
	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/query"
	v1 "github.com/evgeniy-krivenko/notebook/pkg/api/notes/v1"
	"github.com/evgeniy-krivenko/notebook/pkg/grpcx"
)

var _ grpcx.Service = (*Service)(nil)

type notesUsecase interface {
	ListNotes(ctx context.Context, ownerID string, params query.Params) (entity.NotePage, error)
	GetNote(ctx context.Context, ownerID, noteID string) (entity.Note, error)
	CreateNote(ctx context.Context, ownerID string, in entity.CreateNoteInput) (entity.Note, error)
	UpdateNoteContent(ctx context.Context, ownerID, noteID string, in entity.UpdateContentInput) (entity.RevisionResult, error)
	TogglePin(ctx context.Context, ownerID, noteID string, pin bool) error
	ToggleArchive(ctx context.Context, ownerID, noteID string, archive bool) error
	SoftDeleteNote(ctx context.Context, ownerID, noteID string) error
	AssignNoteCategory(ctx context.Context, ownerID, noteID string, categoryID *string) error
	SubscribeToEvents(ctx context.Context, ownerID string) (<-chan entity.ChangeEvent, error)
}

type categoriesUsecase interface {
	ListCategories(ctx context.Context, ownerID string) ([]entity.Category, error)
	CreateCategory(ctx context.Context, ownerID, name, color string) (entity.Category, error)
	RenameCategory(ctx context.Context, ownerID, categoryID, name string) (entity.Category, error)
	DeleteCategory(ctx context.Context, ownerID, categoryID string, res entity.DeleteResolution) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	notes      notesUsecase      `option:"mandatory" validate:"required"`
	categories categoriesUsecase `option:"mandatory" validate:"required"`
}

type Service struct {
	v1.UnimplementedNoteAPIServer
	Options
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes service options: %v", err)
	}

	return &Service{Options: opts}, nil
}

// RegisterService implements grpcx.Service.
func (s *Service) RegisterService(r grpc.ServiceRegistrar) {
	v1.RegisterNoteAPIServer(r, s)
}

// ownerID is empty for anonymous calls; the use cases reject those.
func ownerID(ctx context.Context) string {
	id, _ := ctxtr.UserID(ctx)
	return id
}

func (s *Service) ListNotes(ctx context.Context, req *v1.ListNotesRequest) (*v1.ListNotesResponse, error) {
	page, err := s.notes.ListNotes(ctx, ownerID(ctx), query.Params{
		Q:               req.Q,
		CategoryID:      req.CategoryId,
		Page:            req.Page,
		PageSize:        req.PageSize,
		IncludeArchived: req.IncludeArchived,
	})
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return converter.ConvertNotePageToProto(page), nil
}

func (s *Service) GetNote(ctx context.Context, req *v1.GetNoteRequest) (*v1.GetNoteResponse, error) {
	note, err := s.notes.GetNote(ctx, ownerID(ctx), req.NoteId)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.GetNoteResponse{Note: converter.ConvertNoteToProto(note)}, nil
}

func (s *Service) CreateNote(ctx context.Context, req *v1.CreateNoteRequest) (*v1.CreateNoteResponse, error) {
	note, err := s.notes.CreateNote(ctx, ownerID(ctx), entity.CreateNoteInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryId,
	})
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.CreateNoteResponse{Note: converter.ConvertNoteToProto(note)}, nil
}

func (s *Service) UpdateNoteContent(
	ctx context.Context,
	req *v1.UpdateNoteContentRequest,
) (*v1.UpdateNoteContentResponse, error) {
	res, err := s.notes.UpdateNoteContent(ctx, ownerID(ctx), req.NoteId, entity.UpdateContentInput{
		Content:          req.Content,
		Title:            req.Title,
		ExpectedRevision: req.ExpectedRevision,
	})
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return converter.ConvertRevisionToProto(res), nil
}

func (s *Service) TogglePin(ctx context.Context, req *v1.TogglePinRequest) (*v1.Empty, error) {
	if err := s.notes.TogglePin(ctx, ownerID(ctx), req.NoteId, req.Pinned); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.Empty{}, nil
}

func (s *Service) ToggleArchive(ctx context.Context, req *v1.ToggleArchiveRequest) (*v1.Empty, error) {
	if err := s.notes.ToggleArchive(ctx, ownerID(ctx), req.NoteId, req.Archived); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.Empty{}, nil
}

func (s *Service) SoftDeleteNote(ctx context.Context, req *v1.SoftDeleteNoteRequest) (*v1.Empty, error) {
	if err := s.notes.SoftDeleteNote(ctx, ownerID(ctx), req.NoteId); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.Empty{}, nil
}

func (s *Service) AssignNoteCategory(ctx context.Context, req *v1.AssignNoteCategoryRequest) (*v1.Empty, error) {
	if err := s.notes.AssignNoteCategory(ctx, ownerID(ctx), req.NoteId, req.CategoryId); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.Empty{}, nil
}

func (s *Service) ListCategories(ctx context.Context, _ *v1.ListCategoriesRequest) (*v1.ListCategoriesResponse, error) {
	categories, err := s.categories.ListCategories(ctx, ownerID(ctx))
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.ListCategoriesResponse{Items: converter.ConvertCategoriesToProto(categories)}, nil
}

func (s *Service) CreateCategory(ctx context.Context, req *v1.CreateCategoryRequest) (*v1.CreateCategoryResponse, error) {
	c, err := s.categories.CreateCategory(ctx, ownerID(ctx), req.Name, req.Color)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.CreateCategoryResponse{Category: converter.ConvertCategoryToProto(c)}, nil
}

func (s *Service) RenameCategory(ctx context.Context, req *v1.RenameCategoryRequest) (*v1.RenameCategoryResponse, error) {
	c, err := s.categories.RenameCategory(ctx, ownerID(ctx), req.CategoryId, req.Name)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.RenameCategoryResponse{Category: converter.ConvertCategoryToProto(c)}, nil
}

func (s *Service) DeleteCategory(ctx context.Context, req *v1.DeleteCategoryRequest) (*v1.Empty, error) {
	err := s.categories.DeleteCategory(
		ctx,
		ownerID(ctx),
		req.CategoryId,
		converter.ConvertDeleteRequestToResolution(req),
	)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.Empty{}, nil
}

func (s *Service) SubscribeToEvents(
	_ *v1.SubscribeToEventsRequest,
	stream grpc.ServerStreamingServer[v1.ChangeEvent],
) error {
	ctx := stream.Context()

	events, err := s.notes.SubscribeToEvents(ctx, ownerID(ctx))
	if err != nil {
		return toStatus(ctx, err)
	}

	for ev := range events {
		if err := stream.Send(converter.ConvertEventToProto(ev)); err != nil {
			return err
		}
	}

	return nil
}
