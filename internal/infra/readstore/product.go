package readstore

import (
	"context"

	"gin-storefront/internal/domain/catalog"
	"gin-storefront/internal/infra"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductReadQueries interface {
	ListActiveProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveProductsParams) ([]sqlc.ListActiveProductsRow, error)
	GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetProductByIDRow, error)
	ListReviewsByProduct(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) ([]sqlc.ListReviewsByProductRow, error)
}

// ProductReadStore is the local catalog source backed by Postgres.
type ProductReadStore struct {
	queries ProductReadQueries
	db      sqlc.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db sqlc.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) Name() string {
	return "local"
}

func (r *ProductReadStore) List(ctx context.Context, filter catalog.ListFilter) ([]catalog.Product, error) {
	filter = filter.Normalized()
	params := sqlc.ListActiveProductsParams{
		Category: pgconv.EmptyStringToPgtype(filter.Category),
		Search:   pgconv.EmptyStringToPgtype(filter.Search),
		Featured: filter.Featured,
		MinPrice: pgconv.NumericFromDecimalPtr(filter.MinPrice),
		MaxPrice: pgconv.NumericFromDecimalPtr(filter.MaxPrice),
		SortBy:   string(filter.Sort),
		RowLimit: int32(filter.Limit), // #nosec G115 -- Normalized caps the limit at MaxLimit
	}

	rows, err := r.queries.ListActiveProducts(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}

	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProduct(productRow(row)))
	}
	return products, nil
}

// Get loads an active product with its reviews newest first. Non-UUID ids cannot exist locally.
func (r *ProductReadStore) Get(ctx context.Context, id string) (*catalog.ProductDetail, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, errs.ErrProductNotFound
	}

	row, err := r.queries.GetProductByID(ctx, r.db, productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("product not found", err, infra.KindNotFound), errs.ErrProductNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}

	reviewRows, err := r.queries.ListReviewsByProduct(ctx, r.db, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product reviews", err)
	}

	reviews := make([]catalog.Review, 0, len(reviewRows))
	for _, rv := range reviewRows {
		reviews = append(reviews, catalog.Review{
			ID:         rv.ID.String(),
			Rating:     int(rv.Rating),
			Comment:    rv.Comment,
			AuthorName: rv.AuthorName,
			CreatedAt:  pgconv.TimeFromPgtype(rv.CreatedAt),
		})
	}

	detail := catalog.NewProductDetail(toProduct(productRow(row)), reviews)
	return &detail, nil
}

// productRow is the column set shared by every product query.
type productRow struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Price          pgtype.Numeric
	CompareAtPrice pgtype.Numeric
	Images         []string
	Category       string
	Brand          pgtype.Text
	Sku            pgtype.Text
	Inventory      int32
	IsActive       bool
	Tags           []string
	CreatedAt      pgtype.Timestamptz
}

func toProduct(row productRow) catalog.Product {
	images := row.Images
	if images == nil {
		images = []string{}
	}
	tags := row.Tags
	if tags == nil {
		tags = []string{}
	}
	return catalog.Product{
		ID:             row.ID.String(),
		Name:           row.Name,
		Description:    row.Description,
		Price:          pgconv.DecimalFromNumeric(row.Price),
		CompareAtPrice: pgconv.DecimalPtrFromNumeric(row.CompareAtPrice),
		Images:         images,
		Category:       row.Category,
		Brand:          pgconv.StringPtrFromPgtype(row.Brand),
		SKU:            pgconv.StringFromPgtype(row.Sku),
		Inventory:      int(row.Inventory),
		IsActive:       row.IsActive,
		Tags:           tags,
		CreatedAt:      pgconv.TimePtrFromPgtype(row.CreatedAt),
	}
}
