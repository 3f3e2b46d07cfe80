package websockets

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/petty-cash-float/pkg/projection"
	"github.com/chris/petty-cash-float/pkg/websockets"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Snapshots is the subscription surface of the projection layer. Each local
// client gets its own subscription handle and releases it on disconnect.
type Snapshots interface {
	Subscribe(companyID string, fn func(*projection.Snapshot)) *projection.Subscription
	Refresh(ctx context.Context, companyID string) (*projection.Snapshot, error)
}

// Handler handles WebSocket connections.
type Handler struct {
	connManager websockets.ConnectionManager
	snapshots   Snapshots
}

// NewHandler creates a new Handler. snapshots may be nil in deployed mode,
// where pushes go through the API Gateway publisher instead.
func NewHandler(connManager websockets.ConnectionManager, snapshots Snapshots) *Handler {
	return &Handler{
		connManager: connManager,
		snapshots:   snapshots,
	}
}

// HandleConnect handles new client connections. The company to watch comes
// from the company_id query parameter; a connection with no company would
// receive nothing, so it is rejected outright.
func (h *Handler) HandleConnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	companyID := request.QueryStringParameters["company_id"]
	if companyID == "" {
		slog.Info("Rejecting connection with no company", "connectionId", request.RequestContext.ConnectionID)
		return events.APIGatewayProxyResponse{StatusCode: 400, Body: "Missing company_id query parameter"}, nil
	}

	slog.Info("Client connected", "connectionId", request.RequestContext.ConnectionID, "companyId", companyID)

	if err := h.connManager.AddConnection(ctx, companyID, request.RequestContext.ConnectionID); err != nil {
		slog.Error("failed to save connection ID", "error", err)
		return events.APIGatewayProxyResponse{StatusCode: 500}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

// HandleDisconnect handles client disconnections.
func (h *Handler) HandleDisconnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("Client disconnected", "connectionId", request.RequestContext.ConnectionID)

	if err := h.connManager.RemoveConnection(ctx, request.RequestContext.ConnectionID); err != nil {
		slog.Error("failed to delete connection ID", "error", err)
		return events.APIGatewayProxyResponse{StatusCode: 500}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

// HandleDefault handles messages sent from a client.
func (h *Handler) HandleDefault(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("Received message", "connectionId", request.RequestContext.ConnectionID, "body", request.Body)
	// Clients only listen for snapshot updates; inbound messages are logged and ignored.
	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all connections by default for local development.
		return true
	},
}

// ServeHTTP handles WebSocket requests for the local development server.
// The company to watch comes from the company_id query parameter; the client
// receives the current snapshot immediately and every update after that until
// it disconnects, at which point its subscription is released.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("company_id")
	if companyID == "" {
		http.Error(w, "Missing company_id query parameter", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	// Generate a unique connection ID for local connections.
	connectionID := uuid.New().String()
	slog.Info("Client connected locally", "connectionId", connectionID, "companyId", companyID)

	ctx := r.Context()
	if err := h.connManager.AddConnection(ctx, companyID, connectionID); err != nil {
		slog.Error("failed to save local connection ID", "error", err)
		return
	}
	defer func() {
		slog.Info("Client disconnected locally", "connectionId", connectionID)
		if err := h.connManager.RemoveConnection(ctx, connectionID); err != nil {
			slog.Error("failed to delete local connection ID", "error", err)
		}
	}()

	if h.snapshots != nil {
		sub := h.snapshots.Subscribe(companyID, func(snapshot *projection.Snapshot) {
			if err := conn.WriteJSON(websockets.Message{
				Type:    websockets.MessageTypeSnapshotUpdate,
				Payload: snapshot,
			}); err != nil {
				slog.Error("failed to push snapshot to local client", "connectionId", connectionID, "error", err)
			}
		})
		defer sub.Unsubscribe()

		// Seed the client with the current state so it never starts blank.
		if _, err := h.snapshots.Refresh(ctx, companyID); err != nil {
			slog.Error("failed to build initial snapshot", "companyId", companyID, "error", err)
		}
	}

	// Keep the connection alive, waiting for the client to disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("unexpected close error", "error", err)
			}
			break
		}
	}
}
