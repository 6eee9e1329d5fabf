package catalogapi

// GraphQL documents for the content API. The nested node shape is the
// normalizer's input contract, the client only decodes it.

const allProductsQuery = `
query AllProducts {
  products(first: 100) {
    edges {
      node {
        id
        slug
        title
        product {
          productId
          productPrice
        }
        featuredImage {
          node {
            altText
            sourceUrl
            mediaDetails {
              width
              height
            }
          }
        }
        productCategories {
          edges {
            node {
              id
              name
              slug
            }
          }
        }
      }
    }
  }
}`

const productBySlugQuery = `
query SingleProductBySlug($slug: ID!) {
  product(id: $slug, idType: SLUG) {
    id
    slug
    title
    content
    product {
      productId
      productPrice
    }
    featuredImage {
      node {
        altText
        sourceUrl
        mediaDetails {
          width
          height
        }
      }
    }
    productCategories {
      edges {
        node {
          id
          name
          slug
        }
      }
    }
  }
}`

const allCategoriesQuery = `
query AllCategories {
  productCategories {
    edges {
      node {
        id
        name
        slug
      }
    }
  }
}`
