package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	apiv1 "github.com/you-humble/fieldservice/internal/api/v1"
	"github.com/you-humble/fieldservice/internal/converter"
	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/internal/transport/http/response"
)

type CatalogService interface {
	List(ctx context.Context) ([]*model.CatalogItem, error)
	Item(ctx context.Context, id string) (*model.CatalogItem, error)
	Create(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error)
	Update(ctx context.Context, id string, upd model.CatalogItemUpdate) (*model.CatalogItem, error)
}

type handler struct {
	svc CatalogService
}

func NewCatalogHandler(service CatalogService) *handler {
	return &handler{svc: service}
}

// Routes mounts under /api/v1/catalog.
func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListItems)
	r.Post("/", h.CreateItem)
	r.Get("/{itemID}", h.GetItem)
	r.Patch("/{itemID}", h.UpdateItem)
	return r
}

func (h *handler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.svc.List(ctx)
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, lo.Map(items, func(it *model.CatalogItem, _ int) *apiv1.CatalogItem {
		return converter.CatalogItemToAPI(it)
	}))
}

func (h *handler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	it, err := h.svc.Item(ctx, chi.URLParam(r, "itemID"))
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, converter.CatalogItemToAPI(it))
}

func (h *handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req apiv1.CreateCatalogItemRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(ctx, w, err)
		return
	}

	it, err := h.svc.Create(ctx, converter.CreateCatalogItemRequestToModel(&req))
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusCreated, converter.CatalogItemToAPI(it))
}

func (h *handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req apiv1.UpdateCatalogItemRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(ctx, w, err)
		return
	}

	it, err := h.svc.Update(ctx, chi.URLParam(r, "itemID"), converter.UpdateCatalogItemRequestToModel(&req))
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, converter.CatalogItemToAPI(it))
}
