package shopify

import (
	"context"
	"fmt"
	"strings"

	"gin-storefront/internal/domain/catalog"
	"gin-storefront/internal/pkg/errs"
)

// BuildSearchQuery renders the Storefront search syntax for the text filters.
// Price range and sort are applied after the fetch.
func BuildSearchQuery(filter catalog.ListFilter) string {
	var b strings.Builder
	if filter.Category != "" {
		fmt.Fprintf(&b, "product_type:%s OR tag:%s ", filter.Category, filter.Category)
	}
	if filter.Search != "" {
		fmt.Fprintf(&b, "title:*%s* OR tag:*%s* ", filter.Search, filter.Search)
	}
	if filter.Featured {
		b.WriteString("tag:featured")
	}
	return strings.TrimSpace(b.String())
}

// CatalogSource serves products from a Shopify storefront.
type CatalogSource struct {
	client   *Client
	maxFirst int
}

func NewCatalogSource(client *Client) *CatalogSource {
	maxFirst := client.cfg.MaxProductsPerSearch
	if maxFirst <= 0 || maxFirst > catalog.MaxLimit {
		maxFirst = catalog.MaxLimit
	}
	return &CatalogSource{client: client, maxFirst: maxFirst}
}

func (s *CatalogSource) Name() string {
	return "shopify"
}

func (s *CatalogSource) List(ctx context.Context, filter catalog.ListFilter) ([]catalog.Product, error) {
	filter = filter.Normalized()

	vars := map[string]any{"first": min(filter.Limit, s.maxFirst)}
	if q := BuildSearchQuery(filter); q != "" {
		vars["query"] = q
	}

	var resp productsResponse
	if err := s.client.Run(ctx, productsQuery, vars, &resp); err != nil {
		return nil, errs.Wrap(err, "list shopify products")
	}

	products := make([]catalog.Product, 0, len(resp.Products.Edges))
	for _, e := range resp.Products.Edges {
		products = append(products, toProduct(e.Node))
	}

	products = catalog.FilterByPrice(products, filter)
	catalog.SortProducts(products, filter.Sort)
	return products, nil
}

// Get resolves id as a handle first. A numeric id that matches no handle is retried as a product global id.
func (s *CatalogSource) Get(ctx context.Context, id string) (*catalog.ProductDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.ErrProductNotFound
	}

	node, err := s.fetch(ctx, productByHandleQuery, map[string]any{"handle": id})
	if err != nil {
		return nil, err
	}
	if node == nil && isNumeric(id) {
		node, err = s.fetch(ctx, productByIDQuery, map[string]any{"id": productGIDPrefix + id})
		if err != nil {
			return nil, err
		}
	}
	if node == nil {
		return nil, errs.ErrProductNotFound
	}

	detail := catalog.NewProductDetail(toProduct(*node), nil)
	return &detail, nil
}

func (s *CatalogSource) fetch(ctx context.Context, query string, vars map[string]any) (*productNode, error) {
	var resp productResponse
	if err := s.client.Run(ctx, query, vars, &resp); err != nil {
		return nil, errs.Wrap(err, "get shopify product")
	}
	return resp.Product, nil
}
