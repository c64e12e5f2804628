package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/evgeniy-krivenko/notebook/internal/api/notes/converter"
	"github.com/evgeniy-krivenko/notebook/internal/ctxtr"
	pb "github.com/evgeniy-krivenko/notebook/pkg/api/notes/v1"
	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*60)
	defer cancel()

	if err := slogx.InitGlobal(
		os.Stdout,
		"info",
		true,
	); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	addr := os.Getenv("NOTEBOOK_GRPC_ADDR")
	if addr == "" {
		addr = "127.0.0.1:50051"
	}

	user := os.Getenv("NOTEBOOK_USER")
	if user == "" {
		user = "demo"
	}

	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("new client conn: %v", err)
	}
	defer conn.Close()

	c := pb.NewNoteAPIClient(conn)
	ctx = metadata.AppendToOutgoingContext(ctx, ctxtr.DefaultUserHeader, user)

	streamCtx, stopStream := context.WithCancel(ctx)

	eg, egCtx := errgroup.WithContext(streamCtx)
	eg.Go(func() error { return subscribeToEvents(egCtx, c) })

	err = writeNotes(ctx, c)
	stopStream()

	if werr := eg.Wait(); werr != nil && !errors.Is(werr, context.Canceled) {
		slogx.Warn(ctx, "event stream stopped", slogx.Err(werr))
	}

	return err
}

func subscribeToEvents(ctx context.Context, client pb.NoteAPIClient) error {
	streamer, err := client.SubscribeToEvents(ctx, &pb.SubscribeToEventsRequest{})
	if err != nil {
		return fmt.Errorf("subscribe to events: %v", err)
	}

	for {
		resp, err := streamer.Recv()
		if err != nil {
			if err == io.EOF || ctx.Err() != nil {
				slogx.Info(ctx, "event stream closed")
				return nil
			}

			return fmt.Errorf("subscribe to events recv: %v", err)
		}

		slogx.Info(ctx, "change event",
			slog.String("resource", resp.Resource),
			slog.String("id", resp.Id),
			slog.String("action", resp.Action),
		)
	}
}

func writeNotes(ctx context.Context, client pb.NoteAPIClient) error {
	cat, err := client.CreateCategory(ctx, &pb.CreateCategoryRequest{
		Name:  "greetings " + time.Now().Format(time.TimeOnly),
		Color: "teal",
	})
	if err != nil {
		logNoteError(ctx, err)
		return fmt.Errorf("create category: %v", err)
	}

	var last *pb.Note
	for _, msg := range getMessages() {
		resp, err := client.CreateNote(ctx, &pb.CreateNoteRequest{
			Title:      &msg,
			Content:    &msg,
			CategoryId: &cat.Category.Id,
		})
		if err != nil {
			logNoteError(ctx, err)
			return fmt.Errorf("create note: %v", err)
		}
		last = resp.Note
	}

	if _, err := client.TogglePin(ctx, &pb.TogglePinRequest{NoteId: last.Id, Pinned: true}); err != nil {
		return fmt.Errorf("pin note: %v", err)
	}

	rev, err := client.UpdateNoteContent(ctx, &pb.UpdateNoteContentRequest{
		NoteId:           last.Id,
		Content:          last.Content + " (edited)",
		ExpectedRevision: last.Revision,
	})
	if err != nil {
		return fmt.Errorf("update note: %v", err)
	}
	slogx.Info(ctx, "note saved",
		slog.Int64("revision", rev.Revision),
		slog.Time("updated_at", converter.ConvertDateTimeToTime(rev.UpdatedAt)),
	)

	// A second save with the old revision is rejected.
	_, err = client.UpdateNoteContent(ctx, &pb.UpdateNoteContentRequest{
		NoteId:           last.Id,
		Content:          "stale",
		ExpectedRevision: last.Revision,
	})
	logNoteError(ctx, err)

	page, err := client.ListNotes(ctx, &pb.ListNotesRequest{CategoryId: cat.Category.Id, PageSize: "5"})
	if err != nil {
		return fmt.Errorf("list notes: %v", err)
	}
	for _, n := range page.Items {
		slogx.Info(ctx, "listed note",
			slogx.NoteId(n.Id),
			slog.Bool("pinned", n.IsPinned),
			slog.Int64("revision", n.Revision),
		)
	}
	slogx.Info(ctx, "list notes",
		slog.Int64("total", page.Total),
		slog.Int64("page_count", page.PageCount),
	)

	if _, err := client.DeleteCategory(ctx, &pb.DeleteCategoryRequest{CategoryId: cat.Category.Id}); err != nil {
		logNoteError(ctx, err)
	}

	if _, err := client.DeleteCategory(ctx, &pb.DeleteCategoryRequest{
		CategoryId: cat.Category.Id,
		Clear:      true,
	}); err != nil {
		return fmt.Errorf("delete category: %v", err)
	}

	return nil
}

func logNoteError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	if info, ok := pb.ErrorInfo(err); ok {
		slogx.Error(ctx, "note error", slog.String("reason", info.GetReason()))
		return
	}

	slogx.Error(ctx, "unknown err", slogx.Err(err))
}
