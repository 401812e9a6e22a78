package network

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"golang.org/x/sync/errgroup"

	"github.com/DabicD/Recruitment/internal/domain/schema"
	"github.com/DabicD/Recruitment/internal/engine"
	"github.com/DabicD/Recruitment/internal/render"
)

// Request is one newline-delimited JSON message from a client.
// Attributes, when present, replace the connection's attribute set;
// sort runs after the attributes are applied.
type Request struct {
	Attributes schema.Attributes `json:"attributes,omitempty"`
	Sort       *int              `json:"sort,omitempty"`
	Reset      bool              `json:"reset,omitempty"`
	Quit       bool              `json:"quit,omitempty"`
}

// ListenAndServe binds addr and serves until ctx is cancelled
func ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	slog.Info("Running on address", "addr", listener.Addr().String())
	return Serve(ctx, listener)
}

// Serve accepts connections until ctx is cancelled, then closes the listener
// and every open connection and waits for their handlers to return
func Serve(ctx context.Context, listener net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return listener.Close()
	})

	g.Go(func() error {
		for {
			conn, err := listener.Accept()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				if stderrors.Is(err, net.ErrClosed) {
					// closed by its owner, cancel the group so Wait returns
					return err
				}
				slog.Error("Failed to accept connection", "error", err)
				continue
			}
			g.Go(func() error {
				handleConnection(ctx, conn)
				return nil
			})
		}
	})

	err := g.Wait()
	if stderrors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	// One engine per connection, the table is never shared
	tableEngine := engine.New()
	tableEngine.AddObserver(engine.NewLoggingObserver())

	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)

	for {
		var req Request
		if err := decoder.Decode(&req); err != nil {
			if err == io.EOF || ctx.Err() != nil {
				return // Connection closed
			}
			slog.Error("decode error", "error", err)

			errResult := &render.Result{
				Error: fmt.Sprintf("Invalid request format: %v", err),
			}
			_ = encoder.Encode(errResult)
			return
		}

		if req.Quit {
			return
		}

		if err := encoder.Encode(Handle(tableEngine, req)); err != nil {
			slog.Error("encode error", "error", err)
			return
		}
	}
}

// Handle applies one request to an engine and returns the rendered view
func Handle(eng *engine.Engine, req Request) *render.Result {
	if req.Reset {
		eng.Reset()
	}
	if req.Attributes != nil {
		// Configuration errors come back as the placeholder message
		_, _ = eng.Apply(req.Attributes)
	}
	if req.Sort != nil {
		if eng.Table() == nil {
			return &render.Result{Error: "no table to sort"}
		}
		if res := eng.SortByColumn(*req.Sort); res.Mode == "" {
			return &render.Result{Error: fmt.Sprintf("column %d out of range", *req.Sort)}
		}
	}
	return eng.Render()
}
