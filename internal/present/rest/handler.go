package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	lucidfeed "github.com/lucidfeed-wq/Lucid-Feed-sub003"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/present/rest/middleware"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/present/rest/presenter"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/service"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/usecase"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/ranking"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/taxonomy"
)

type Handler struct {
	retrieval *usecase.RetrievalUsecase
	ingest    *usecase.IngestUsecase
	folders   *usecase.FolderUsecase
	bookmarks *usecase.BookmarkUsecase
	catalog   *usecase.CatalogUsecase
	digests   *usecase.DigestUsecase
	signal    *service.SignalService
}

func NewHandler(
	retrieval *usecase.RetrievalUsecase,
	ingest *usecase.IngestUsecase,
	folders *usecase.FolderUsecase,
	bookmarks *usecase.BookmarkUsecase,
	catalog *usecase.CatalogUsecase,
	digests *usecase.DigestUsecase,
	signal *service.SignalService,
) *Handler {
	return &Handler{
		retrieval: retrieval,
		ingest:    ingest,
		folders:   folders,
		bookmarks: bookmarks,
		catalog:   catalog,
		digests:   digests,
		signal:    signal,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/.well-known/lucidfeed", h.handleWellKnown)
	e.GET("/api/v1/items", h.handleQueryItems)
	e.POST("/api/v1/items", h.handleIngest)
	e.GET("/api/v1/items/:id", h.handleGetItem)
	e.POST("/api/v1/items/:id/engagement", h.handleEngagement)
	e.POST("/api/v1/items/:id/subscores", h.handleRescore)
	e.GET("/api/v1/items/:id/folders", h.handleListItemFolders)
	e.POST("/api/v1/folders", h.handleCreateFolder)
	e.PUT("/api/v1/folders/:folderID", h.handleRenameFolder)
	e.DELETE("/api/v1/folders/:folderID", h.handleDeleteFolder)
	e.PUT("/api/v1/folders/:folderID/items/:itemID", h.handleAddFolderItem)
	e.DELETE("/api/v1/folders/:folderID/items/:itemID", h.handleRemoveFolderItem)
	e.PUT("/api/v1/bookmarks/:itemID", h.handleSaveBookmark)
	e.DELETE("/api/v1/bookmarks/:itemID", h.handleRemoveBookmark)
	e.GET("/api/v1/catalog", h.handleListCatalog)
	e.POST("/api/v1/catalog", h.handleRegisterFeed)
	e.GET("/api/v1/digests", h.handleListDigests)
	e.GET("/api/v1/digests/:id", h.handleGetDigest)
	e.POST("/api/v1/digests", h.handleRegisterDigest)
	e.GET("/realtime", h.handleRealtime)
}

// present maps engine errors to the distinct client messaging each kind
// carries: fix-your-request, upgrade-prompt, or not-found.
func present(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingScopeField):
		return presenter.BadRequest(c, err)
	case errors.Is(err, domain.ErrTierInsufficient):
		return presenter.Forbidden(c, fmt.Sprintf("upgrade required: %s", err))
	case errors.Is(err, domain.ErrFolderNotOwned):
		return presenter.NotFound(c, "folder not found")
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, err.Error())
	case errors.Is(err, taxonomy.ErrInvalidTopic):
		return presenter.Unprocessable(c, err)
	default:
		return presenter.InternalError(c, err)
	}
}

func (h *Handler) handleWellKnown(c echo.Context) error {
	wellknown := lucidfeed.WellKnownLucidFeed{
		Version: "1.0",
		Endpoints: map[string]lucidfeed.Endpoint{
			"net.lucidfeed.items": {
				Template: "/api/v1/items",
				Method:   "GET",
				Query:    &[]string{"scope", "digest", "folder", "sort", "limit"},
			},
			"net.lucidfeed.ingest": {
				Template: "/api/v1/items",
				Method:   "POST",
			},
			"net.lucidfeed.engagement": {
				Template: "/api/v1/items/{id}/engagement",
				Method:   "POST",
			},
			"net.lucidfeed.folders": {
				Template: "/api/v1/folders",
				Method:   "POST",
			},
			"net.lucidfeed.folder-items": {
				Template: "/api/v1/folders/{folderID}/items/{itemID}",
				Method:   "PUT",
			},
			"net.lucidfeed.bookmarks": {
				Template: "/api/v1/bookmarks/{itemID}",
				Method:   "PUT",
			},
			"net.lucidfeed.catalog": {
				Template: "/api/v1/catalog",
				Method:   "GET",
			},
			"net.lucidfeed.digests": {
				Template: "/api/v1/digests",
				Method:   "GET",
			},
			"net.lucidfeed.realtime": {
				Template: "/realtime",
				Method:   "GET",
			},
		},
	}
	return presenter.OK(c, wellknown)
}

func (h *Handler) handleQueryItems(c echo.Context) error {
	ctx := c.Request().Context()

	scope := domain.Scope{
		Type:     domain.ScopeType(c.QueryParam("scope")),
		DigestID: c.QueryParam("digest"),
		FolderID: c.QueryParam("folder"),
	}
	if scope.Type == "" {
		scope.Type = domain.ScopeCurrentDigest
	}

	option := ranking.QualityDesc
	if sortStr := c.QueryParam("sort"); sortStr != "" {
		parsed, err := ranking.ParseOption(sortStr)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid sort parameter")
		}
		option = parsed
	}

	limit := 50
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limitInt, err := strconv.Atoi(limitStr)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid limit parameter")
		}
		limit = limitInt
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	items, err := h.retrieval.Query(
		ctx,
		scope,
		option,
		middleware.RequesterID(ctx),
		middleware.RequesterTier(ctx),
		limit,
	)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, items)
}

type ingestRequest struct {
	FeedName string          `json:"feedName"`
	Item     usecase.RawItem `json:"item"`
}

func (h *Handler) handleIngest(c echo.Context) error {
	ctx := c.Request().Context()

	var req ingestRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	feed, err := h.catalog.Get(ctx, req.FeedName)
	if err != nil {
		return present(c, err)
	}

	item, err := h.ingest.Ingest(ctx, feed, req.Item)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, item)
}

func (h *Handler) handleGetItem(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.retrieval.Get(ctx, c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, item)
}

func (h *Handler) handleEngagement(c echo.Context) error {
	ctx := c.Request().Context()

	var delta domain.Engagement
	if err := c.Bind(&delta); err != nil {
		return presenter.BadRequest(c, err)
	}

	item, err := h.retrieval.AddEngagement(ctx, c.Param("id"), delta)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, item)
}

func (h *Handler) handleRescore(c echo.Context) error {
	ctx := c.Request().Context()

	var subscores map[string]float64
	if err := c.Bind(&subscores); err != nil {
		return presenter.BadRequest(c, err)
	}

	score, err := h.ingest.Rescore(ctx, c.Param("id"), subscores)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, score)
}

func (h *Handler) handleListItemFolders(c echo.Context) error {
	ctx := c.Request().Context()

	folders, err := h.folders.List(
		ctx,
		c.Param("id"),
		middleware.RequesterID(ctx),
		middleware.RequesterTier(ctx),
	)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, folders)
}

type createFolderRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (h *Handler) handleCreateFolder(c echo.Context) error {
	ctx := c.Request().Context()

	var req createFolderRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.Name == "" {
		return presenter.BadRequestMessage(c, "folder name is required")
	}

	folder := domain.Folder{
		UserID:      middleware.RequesterID(ctx),
		Name:        req.Name,
		Description: req.Description,
	}
	err := h.folders.CreateFolder(ctx, folder, middleware.RequesterTier(ctx))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

type renameFolderRequest struct {
	Name string `json:"name"`
}

func (h *Handler) handleRenameFolder(c echo.Context) error {
	ctx := c.Request().Context()

	var req renameFolderRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.Name == "" {
		return presenter.BadRequestMessage(c, "folder name is required")
	}

	err := h.folders.Rename(
		ctx,
		c.Param("folderID"),
		req.Name,
		middleware.RequesterID(ctx),
		middleware.RequesterTier(ctx),
	)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleDeleteFolder(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.folders.DeleteFolder(
		ctx,
		c.Param("folderID"),
		middleware.RequesterID(ctx),
		middleware.RequesterTier(ctx),
	)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleAddFolderItem(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.folders.Add(
		ctx,
		c.Param("folderID"),
		c.Param("itemID"),
		middleware.RequesterID(ctx),
		middleware.RequesterTier(ctx),
	)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleRemoveFolderItem(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.folders.Remove(
		ctx,
		c.Param("folderID"),
		c.Param("itemID"),
		middleware.RequesterID(ctx),
		middleware.RequesterTier(ctx),
	)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleSaveBookmark(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.bookmarks.Save(
		ctx,
		middleware.RequesterID(ctx),
		c.Param("itemID"),
		middleware.RequesterTier(ctx),
	)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleRemoveBookmark(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.bookmarks.Unsave(
		ctx,
		middleware.RequesterID(ctx),
		c.Param("itemID"),
		middleware.RequesterTier(ctx),
	)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleListCatalog(c echo.Context) error {
	ctx := c.Request().Context()

	includeUnapproved := c.QueryParam("all") == "true"
	feeds, err := h.catalog.List(ctx, includeUnapproved)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, feeds)
}

func (h *Handler) handleRegisterFeed(c echo.Context) error {
	ctx := c.Request().Context()

	var feed domain.Feed
	if err := c.Bind(&feed); err != nil {
		return presenter.BadRequest(c, err)
	}
	if feed.Name == "" {
		return presenter.BadRequestMessage(c, "feed name is required")
	}

	err := h.catalog.Register(ctx, feed)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleListDigests(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 30
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limitInt, err := strconv.Atoi(limitStr)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid limit parameter")
		}
		limit = limitInt
	}
	if limit <= 0 {
		limit = 30
	}

	digests, err := h.digests.List(ctx, limit)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, digests)
}

func (h *Handler) handleGetDigest(c echo.Context) error {
	ctx := c.Request().Context()

	digest, err := h.digests.Get(ctx, c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, digest)
}

func (h *Handler) handleRegisterDigest(c echo.Context) error {
	ctx := c.Request().Context()

	var digest domain.Digest
	if err := c.Bind(&digest); err != nil {
		return presenter.BadRequest(c, err)
	}
	if digest.ID == "" {
		return presenter.BadRequestMessage(c, "digest id is required")
	}

	err := h.digests.Register(ctx, digest)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type realtimeRequest struct {
	Type string   `json:"type"`
	Ids  []string `json:"ids"`
}

func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer func() {
		ws.Close()
	}()

	// Cancellation is the only shutdown signal. The channels are never
	// closed: the signal pump may have exited before either side sends, so
	// every send selects against ctx instead.
	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	input := make(chan []string)
	output := make(chan lucidfeed.Event)

	go h.signal.Realtime(ctx, input, output)

	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			var req realtimeRequest
			err := ws.ReadJSON(&req)
			if err != nil {

				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}

				return
			}

			switch req.Type {
			case "listen":
				select {
				case input <- req.Ids:
				case <-ctx.Done():
					return
				}
				slog.DebugContext(
					ctx, fmt.Sprintf("Socket subscribe: %s", req.Ids),
					slog.String("module", "socket"),
				)
			case "h": // heartbeat
				// do nothing
			default:
				slog.InfoContext(
					ctx, "Unknown request type",
					slog.String("type", req.Type),
					slog.String("module", "socket"),
				)
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event := <-output:
			err := ws.WriteJSON(event)
			if err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
