package httpserver

import (
	"context"

	itemHTTP "item-gallery/internal/item/delivery/http"
	itemRepo "item-gallery/internal/item/repository/api"
	itemUC "item-gallery/internal/item/usecase"
	"item-gallery/internal/middleware"
)

// setupItemDomain wires the items API repository, the view state controller and
// the gallery pages, then loads the initial item list.
func (srv HTTPServer) setupItemDomain(ctx context.Context, mw middleware.Middleware) error {
	// 1. Repository
	repo := itemRepo.New(itemRepo.NewClient(srv.apiURL, srv.transport), srv.l)

	// 2. UseCase
	uc := itemUC.New(repo, srv.l, itemUC.Options{
		BaseURL:        srv.baseURL,
		RefreshTimeout: srv.refreshTimeout,
	})

	// 3. HTTP Handler
	h, err := itemHTTP.New(srv.l, uc)
	if err != nil {
		return err
	}

	// 4. Routes
	itemHTTP.RegisterRoutes(srv.gin, h, mw)

	// Initial load; the page still renders with an empty list if the API is down.
	if err := uc.Refresh(ctx); err != nil {
		srv.l.Warnf(ctx, "Initial item load failed: %v", err)
	}

	srv.l.Infof(ctx, "Item domain registered (api=%s, transport=%s)", srv.apiURL, srv.transport.Name())
	return nil
}
