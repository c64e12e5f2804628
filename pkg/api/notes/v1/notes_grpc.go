package notesv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const NoteAPI_ServiceName = "notebook.v1.NoteAPI"

const (
	NoteAPI_ListNotes_FullMethodName          = "/notebook.v1.NoteAPI/ListNotes"
	NoteAPI_GetNote_FullMethodName            = "/notebook.v1.NoteAPI/GetNote"
	NoteAPI_CreateNote_FullMethodName         = "/notebook.v1.NoteAPI/CreateNote"
	NoteAPI_UpdateNoteContent_FullMethodName  = "/notebook.v1.NoteAPI/UpdateNoteContent"
	NoteAPI_TogglePin_FullMethodName          = "/notebook.v1.NoteAPI/TogglePin"
	NoteAPI_ToggleArchive_FullMethodName      = "/notebook.v1.NoteAPI/ToggleArchive"
	NoteAPI_SoftDeleteNote_FullMethodName     = "/notebook.v1.NoteAPI/SoftDeleteNote"
	NoteAPI_AssignNoteCategory_FullMethodName = "/notebook.v1.NoteAPI/AssignNoteCategory"
	NoteAPI_ListCategories_FullMethodName     = "/notebook.v1.NoteAPI/ListCategories"
	NoteAPI_CreateCategory_FullMethodName     = "/notebook.v1.NoteAPI/CreateCategory"
	NoteAPI_RenameCategory_FullMethodName     = "/notebook.v1.NoteAPI/RenameCategory"
	NoteAPI_DeleteCategory_FullMethodName     = "/notebook.v1.NoteAPI/DeleteCategory"
	NoteAPI_SubscribeToEvents_FullMethodName  = "/notebook.v1.NoteAPI/SubscribeToEvents"
)

type NoteAPIClient interface {
	ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error)
	GetNote(ctx context.Context, in *GetNoteRequest, opts ...grpc.CallOption) (*GetNoteResponse, error)
	CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*CreateNoteResponse, error)
	UpdateNoteContent(ctx context.Context, in *UpdateNoteContentRequest, opts ...grpc.CallOption) (*UpdateNoteContentResponse, error)
	TogglePin(ctx context.Context, in *TogglePinRequest, opts ...grpc.CallOption) (*Empty, error)
	ToggleArchive(ctx context.Context, in *ToggleArchiveRequest, opts ...grpc.CallOption) (*Empty, error)
	SoftDeleteNote(ctx context.Context, in *SoftDeleteNoteRequest, opts ...grpc.CallOption) (*Empty, error)
	AssignNoteCategory(ctx context.Context, in *AssignNoteCategoryRequest, opts ...grpc.CallOption) (*Empty, error)
	ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*CreateCategoryResponse, error)
	RenameCategory(ctx context.Context, in *RenameCategoryRequest, opts ...grpc.CallOption) (*RenameCategoryResponse, error)
	DeleteCategory(ctx context.Context, in *DeleteCategoryRequest, opts ...grpc.CallOption) (*Empty, error)
	SubscribeToEvents(ctx context.Context, in *SubscribeToEventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChangeEvent], error)
}

type noteAPIClient struct {
	cc grpc.ClientConnInterface
}

// NewNoteAPIClient returns a client that speaks the JSON content subtype on
// every call.
func NewNoteAPIClient(cc grpc.ClientConnInterface) NoteAPIClient {
	return &noteAPIClient{cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.StaticMethod(), grpc.CallContentSubtype(CodecName)}, opts...)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *noteAPIClient) ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error) {
	return invoke[ListNotesResponse](ctx, c.cc, NoteAPI_ListNotes_FullMethodName, in, opts)
}

func (c *noteAPIClient) GetNote(ctx context.Context, in *GetNoteRequest, opts ...grpc.CallOption) (*GetNoteResponse, error) {
	return invoke[GetNoteResponse](ctx, c.cc, NoteAPI_GetNote_FullMethodName, in, opts)
}

func (c *noteAPIClient) CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*CreateNoteResponse, error) {
	return invoke[CreateNoteResponse](ctx, c.cc, NoteAPI_CreateNote_FullMethodName, in, opts)
}

func (c *noteAPIClient) UpdateNoteContent(ctx context.Context, in *UpdateNoteContentRequest, opts ...grpc.CallOption) (*UpdateNoteContentResponse, error) {
	return invoke[UpdateNoteContentResponse](ctx, c.cc, NoteAPI_UpdateNoteContent_FullMethodName, in, opts)
}

func (c *noteAPIClient) TogglePin(ctx context.Context, in *TogglePinRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, NoteAPI_TogglePin_FullMethodName, in, opts)
}

func (c *noteAPIClient) ToggleArchive(ctx context.Context, in *ToggleArchiveRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, NoteAPI_ToggleArchive_FullMethodName, in, opts)
}

func (c *noteAPIClient) SoftDeleteNote(ctx context.Context, in *SoftDeleteNoteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, NoteAPI_SoftDeleteNote_FullMethodName, in, opts)
}

func (c *noteAPIClient) AssignNoteCategory(ctx context.Context, in *AssignNoteCategoryRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, NoteAPI_AssignNoteCategory_FullMethodName, in, opts)
}

func (c *noteAPIClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[ListCategoriesResponse](ctx, c.cc, NoteAPI_ListCategories_FullMethodName, in, opts)
}

func (c *noteAPIClient) CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*CreateCategoryResponse, error) {
	return invoke[CreateCategoryResponse](ctx, c.cc, NoteAPI_CreateCategory_FullMethodName, in, opts)
}

func (c *noteAPIClient) RenameCategory(ctx context.Context, in *RenameCategoryRequest, opts ...grpc.CallOption) (*RenameCategoryResponse, error) {
	return invoke[RenameCategoryResponse](ctx, c.cc, NoteAPI_RenameCategory_FullMethodName, in, opts)
}

func (c *noteAPIClient) DeleteCategory(ctx context.Context, in *DeleteCategoryRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, NoteAPI_DeleteCategory_FullMethodName, in, opts)
}

func (c *noteAPIClient) SubscribeToEvents(ctx context.Context, in *SubscribeToEventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChangeEvent], error) {
	stream, err := c.cc.NewStream(ctx, &NoteAPI_ServiceDesc.Streams[0], NoteAPI_SubscribeToEvents_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}

	x := &grpc.GenericClientStream[SubscribeToEventsRequest, ChangeEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

// NoteAPIServer must embed UnimplementedNoteAPIServer.
type NoteAPIServer interface {
	ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error)
	GetNote(context.Context, *GetNoteRequest) (*GetNoteResponse, error)
	CreateNote(context.Context, *CreateNoteRequest) (*CreateNoteResponse, error)
	UpdateNoteContent(context.Context, *UpdateNoteContentRequest) (*UpdateNoteContentResponse, error)
	TogglePin(context.Context, *TogglePinRequest) (*Empty, error)
	ToggleArchive(context.Context, *ToggleArchiveRequest) (*Empty, error)
	SoftDeleteNote(context.Context, *SoftDeleteNoteRequest) (*Empty, error)
	AssignNoteCategory(context.Context, *AssignNoteCategoryRequest) (*Empty, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	CreateCategory(context.Context, *CreateCategoryRequest) (*CreateCategoryResponse, error)
	RenameCategory(context.Context, *RenameCategoryRequest) (*RenameCategoryResponse, error)
	DeleteCategory(context.Context, *DeleteCategoryRequest) (*Empty, error)
	SubscribeToEvents(*SubscribeToEventsRequest, grpc.ServerStreamingServer[ChangeEvent]) error
	mustEmbedUnimplementedNoteAPIServer()
}

type UnimplementedNoteAPIServer struct{}

func (UnimplementedNoteAPIServer) ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListNotes not implemented")
}
func (UnimplementedNoteAPIServer) GetNote(context.Context, *GetNoteRequest) (*GetNoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetNote not implemented")
}
func (UnimplementedNoteAPIServer) CreateNote(context.Context, *CreateNoteRequest) (*CreateNoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateNote not implemented")
}
func (UnimplementedNoteAPIServer) UpdateNoteContent(context.Context, *UpdateNoteContentRequest) (*UpdateNoteContentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateNoteContent not implemented")
}
func (UnimplementedNoteAPIServer) TogglePin(context.Context, *TogglePinRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TogglePin not implemented")
}
func (UnimplementedNoteAPIServer) ToggleArchive(context.Context, *ToggleArchiveRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ToggleArchive not implemented")
}
func (UnimplementedNoteAPIServer) SoftDeleteNote(context.Context, *SoftDeleteNoteRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SoftDeleteNote not implemented")
}
func (UnimplementedNoteAPIServer) AssignNoteCategory(context.Context, *AssignNoteCategoryRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssignNoteCategory not implemented")
}
func (UnimplementedNoteAPIServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCategories not implemented")
}
func (UnimplementedNoteAPIServer) CreateCategory(context.Context, *CreateCategoryRequest) (*CreateCategoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateCategory not implemented")
}
func (UnimplementedNoteAPIServer) RenameCategory(context.Context, *RenameCategoryRequest) (*RenameCategoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RenameCategory not implemented")
}
func (UnimplementedNoteAPIServer) DeleteCategory(context.Context, *DeleteCategoryRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteCategory not implemented")
}
func (UnimplementedNoteAPIServer) SubscribeToEvents(*SubscribeToEventsRequest, grpc.ServerStreamingServer[ChangeEvent]) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeToEvents not implemented")
}
func (UnimplementedNoteAPIServer) mustEmbedUnimplementedNoteAPIServer() {}

func RegisterNoteAPIServer(s grpc.ServiceRegistrar, srv NoteAPIServer) {
	s.RegisterService(&NoteAPI_ServiceDesc, srv)
}

func unary[Req, Resp any](
	name string,
	call func(NoteAPIServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	fullMethod := "/" + NoteAPI_ServiceName + "/" + name

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}

			if interceptor == nil {
				return call(srv.(NoteAPIServer), ctx, in)
			}

			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(NoteAPIServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}, handler)
		},
	}
}

func _NoteAPI_SubscribeToEvents_Handler(srv any, stream grpc.ServerStream) error {
	m := new(SubscribeToEventsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}

	return srv.(NoteAPIServer).SubscribeToEvents(m, &grpc.GenericServerStream[SubscribeToEventsRequest, ChangeEvent]{ServerStream: stream})
}

var NoteAPI_ServiceDesc = grpc.ServiceDesc{
	ServiceName: NoteAPI_ServiceName,
	HandlerType: (*NoteAPIServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListNotes", NoteAPIServer.ListNotes),
		unary("GetNote", NoteAPIServer.GetNote),
		unary("CreateNote", NoteAPIServer.CreateNote),
		unary("UpdateNoteContent", NoteAPIServer.UpdateNoteContent),
		unary("TogglePin", NoteAPIServer.TogglePin),
		unary("ToggleArchive", NoteAPIServer.ToggleArchive),
		unary("SoftDeleteNote", NoteAPIServer.SoftDeleteNote),
		unary("AssignNoteCategory", NoteAPIServer.AssignNoteCategory),
		unary("ListCategories", NoteAPIServer.ListCategories),
		unary("CreateCategory", NoteAPIServer.CreateCategory),
		unary("RenameCategory", NoteAPIServer.RenameCategory),
		unary("DeleteCategory", NoteAPIServer.DeleteCategory),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeToEvents",
			Handler:       _NoteAPI_SubscribeToEvents_Handler,
			ServerStreams: true,
		},
	},
}
