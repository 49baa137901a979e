package handler

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type ProductHandler struct {
	uc     product.UseCase
	views  storefront.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, views storefront.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		views:  views,
		logger: log,
	}
}

type getProductRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GetProduct returns the product detail view. Lookup is by id, or by exact
// name when id is absent.
func (h *ProductHandler) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in getProductRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, h.fail("invalid get product request", err)
	}

	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return nil, h.fail("invalid user", err)
	}

	id := in.ID
	if id == 0 {
		if in.Name == "" {
			return nil, h.fail("invalid get product request", fmt.Errorf("%w: id or name is required", model.ErrValidation))
		}
		p, err := h.uc.GetProductByName(ctx, in.Name)
		if err != nil {
			return nil, h.fail("failed to get product", err)
		}
		id = p.ID
	}

	details, err := h.views.ProductDetails(ctx, id, userID)
	if err != nil {
		return nil, h.fail("failed to get product", err)
	}

	return h.encode(map[string]interface{}{"product": details})
}

type listProductsRequest struct {
	All        bool            `json:"all"`
	Category   *model.Category `json:"category"`
	HandoffIDs []int64         `json:"handoff_ids"`
}

// ListProducts lists everything or one category as annotated cards. A handoff
// list is returned as-is.
func (h *ProductHandler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listProductsRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, h.fail("invalid list request", err)
	}

	filter := &dto.ListFilter{All: in.All, HandoffIDs: in.HandoffIDs}
	if in.Category != nil {
		filter.Category = *in.Category
	} else if !in.All && len(in.HandoffIDs) == 0 {
		return nil, h.fail("invalid list request", fmt.Errorf("%w: category is required", model.ErrValidation))
	}

	products, err := h.uc.ListProducts(ctx, filter)
	if err != nil {
		return nil, h.fail("failed to list products", err)
	}
	if len(in.HandoffIDs) > 0 {
		return h.encodeProducts(products)
	}

	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return nil, h.fail("invalid user", err)
	}
	cards, err := h.views.Cards(ctx, products, userID)
	if err != nil {
		return nil, h.fail("failed to annotate products", err)
	}
	return h.encode(map[string]interface{}{"products": cards})
}

type brandRequest struct {
	Brand *model.Brand `json:"brand"`
}

func (h *ProductHandler) ListBrandProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in brandRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, h.fail("invalid brand request", err)
	}
	if in.Brand == nil {
		return nil, h.fail("invalid brand request", fmt.Errorf("%w: brand is required", model.ErrValidation))
	}

	products, err := h.uc.ListByBrand(ctx, *in.Brand)
	if err != nil {
		return nil, h.fail("failed to list brand products", err)
	}
	return h.encodeProducts(products)
}

func (h *ProductHandler) ListSaleProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	products, err := h.uc.ListSale(ctx)
	if err != nil {
		return nil, h.fail("failed to list sale products", err)
	}
	return h.encodeProducts(products)
}

type searchRequest struct {
	Query string `json:"query"`
}

func (h *ProductHandler) SearchProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in searchRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, h.fail("invalid search request", err)
	}

	products, err := h.uc.Search(ctx, in.Query)
	if err != nil {
		return nil, h.fail("failed to search products", err)
	}
	return h.encodeProducts(products)
}

type pageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func (h *ProductHandler) ListProductsPage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := pageRequest{Page: 1}
	if err := rpc.Decode(req, &in); err != nil {
		return nil, h.fail("invalid page request", err)
	}

	products, err := h.uc.ListPage(ctx, in.Page, in.PageSize)
	if err != nil {
		return nil, h.fail("failed to list page", err)
	}
	return h.encodeProducts(products)
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.ProductInput
	if err := rpc.Decode(req, &in); err != nil {
		return nil, h.fail("invalid product", err)
	}

	p, err := h.uc.CreateProduct(ctx, &in)
	if err != nil {
		return nil, h.fail("failed to create product", err)
	}
	return h.encode(map[string]interface{}{"product": p})
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.ProductInput
	if err := rpc.Decode(req, &in); err != nil {
		return nil, h.fail("invalid product", err)
	}
	if in.ID == 0 {
		return nil, h.fail("invalid product", fmt.Errorf("%w: id is required", model.ErrValidation))
	}

	p, err := h.uc.UpdateProduct(ctx, &in)
	if err != nil {
		return nil, h.fail("failed to update product", err)
	}
	return h.encode(map[string]interface{}{"product": p})
}

type idRequest struct {
	ID int64 `json:"id"`
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	var in idRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, h.fail("invalid delete request", err)
	}

	if err := h.uc.DeleteProduct(ctx, in.ID); err != nil {
		return nil, h.fail("failed to delete product", err)
	}
	return &emptypb.Empty{}, nil
}

type reduceStockRequest struct {
	Items []model.BasketItem `json:"items"`
}

func (h *ProductHandler) ReduceStock(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	var in reduceStockRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, h.fail("invalid reduce stock request", err)
	}

	if err := h.uc.ReduceStock(ctx, in.Items); err != nil {
		return nil, h.fail("failed to reduce stock", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *ProductHandler) ListFlavors(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	flavors, err := h.uc.ListFlavors(ctx)
	if err != nil {
		return nil, h.fail("failed to list flavors", err)
	}
	return h.encode(map[string]interface{}{"flavors": flavors})
}

func (h *ProductHandler) encodeProducts(products []model.Product) (*structpb.Struct, error) {
	if products == nil {
		products = []model.Product{}
	}
	return h.encode(map[string]interface{}{"products": products})
}

func (h *ProductHandler) encode(v interface{}) (*structpb.Struct, error) {
	out, err := rpc.Encode(v)
	if err != nil {
		return nil, h.fail("failed to encode response", err)
	}
	return out, nil
}

func (h *ProductHandler) fail(msg string, err error) error {
	return rpc.Error(h.logger, msg, err)
}
