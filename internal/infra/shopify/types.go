package shopify

import (
	"time"

	"github.com/shopspring/decimal"
)

type money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

type priceRange struct {
	MinVariantPrice *money `json:"minVariantPrice"`
}

type imageNode struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type variantNode struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	SKU               string `json:"sku"`
	AvailableForSale  bool   `json:"availableForSale"`
	QuantityAvailable *int   `json:"quantityAvailable"`
	Price             *money `json:"price"`
	CompareAtPrice    *money `json:"compareAtPrice"`
}

type productNode struct {
	ID                  string      `json:"id"`
	Handle              string      `json:"handle"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	ProductType         string      `json:"productType"`
	Vendor              string      `json:"vendor"`
	Tags                []string    `json:"tags"`
	CreatedAt           *time.Time  `json:"createdAt"`
	PriceRange          *priceRange `json:"priceRange"`
	CompareAtPriceRange *priceRange `json:"compareAtPriceRange"`
	Images              struct {
		Edges []struct {
			Node imageNode `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node variantNode `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

type productsResponse struct {
	Products struct {
		Edges []struct {
			Node productNode `json:"node"`
		} `json:"edges"`
	} `json:"products"`
}

type productResponse struct {
	Product *productNode `json:"product"`
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type cartCreateResponse struct {
	CartCreate struct {
		Cart *struct {
			ID          string `json:"id"`
			CheckoutURL string `json:"checkoutUrl"`
		} `json:"cart"`
		UserErrors []userError `json:"userErrors"`
	} `json:"cartCreate"`
}

const productFields = `
fragment ProductFields on Product {
  id
  handle
  title
  description
  productType
  vendor
  tags
  createdAt
  priceRange { minVariantPrice { amount currencyCode } }
  compareAtPriceRange { minVariantPrice { amount currencyCode } }
  images(first: 10) { edges { node { url altText } } }
  variants(first: 100) {
    edges {
      node {
        id
        title
        sku
        availableForSale
        quantityAvailable
        price { amount currencyCode }
        compareAtPrice { amount currencyCode }
      }
    }
  }
}
`

const productsQuery = `
query Products($first: Int!, $query: String) {
  products(first: $first, query: $query) {
    edges { node { ...ProductFields } }
  }
}
` + productFields

const productByHandleQuery = `
query ProductByHandle($handle: String!) {
  product(handle: $handle) { ...ProductFields }
}
` + productFields

const productByIDQuery = `
query ProductByID($id: ID!) {
  product(id: $id) { ...ProductFields }
}
` + productFields

const cartCreateMutation = `
mutation CartCreate($input: CartInput!) {
  cartCreate(input: $input) {
    cart { id checkoutUrl }
    userErrors { field message }
  }
}
`
