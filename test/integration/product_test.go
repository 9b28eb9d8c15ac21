package integration

import (
	"fmt"
	"net/http"
	"testing"

	"shopkart_backend/internal/models"
	"shopkart_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProductPayload(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":  name,
		"price": 49.99,
		"stock": 10,
		"features": []map[string]string{
			{"feature_type": "color", "feature_value": "red"},
		},
	}
}

func TestCreateProduct_SellerOwnCompany(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	_, token := ts.CreateAndLoginUser(t, "seller@test.dev", 3, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/products",
		createProductPayload("Kettle"), token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var product models.Product
	require.NoError(t, ts.DB.Preload("Features").First(&product).Error)
	assert.Equal(t, "Kettle", product.Name)
	assert.Equal(t, company.ID, product.CompanyID)
	assert.Len(t, product.Features, 1)
}

func TestCreateProduct_BuyerForbidden(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	_, token := ts.CreateAndLoginUser(t, "buyer@test.dev", 4, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/products",
		createProductPayload("Kettle"), token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateProduct_SuperAdminMustNameCompany(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	_, token := ts.CreateAndLoginUser(t, "root@test.dev", models.RoleSuperAdminID, nil)

	// Без company_id - 422
	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/products",
		createProductPayload("Kettle"), token)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// С явной компанией - создается в ней
	payload := createProductPayload("Kettle")
	payload["company_id"] = company.ID
	rec = ts.SendRequest(t, http.MethodPost, "/api/v1/products", payload, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var product models.Product
	require.NoError(t, ts.DB.First(&product).Error)
	assert.Equal(t, company.ID, product.CompanyID)
}

func TestUpdateStock_TenantIsolation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	companyA := ts.CreateCompany(t, "Acme")
	companyB := ts.CreateCompany(t, "Globex")
	_, tokenA := ts.CreateAndLoginUser(t, "sellerA@test.dev", 3, &companyA.ID)
	_, tokenB := ts.CreateAndLoginUser(t, "sellerB@test.dev", 3, &companyB.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/products",
		createProductPayload("Kettle"), tokenA)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Продавец чужой компании не может менять остаток
	rec = ts.SendRequest(t, http.MethodPatch, "/api/v1/products/1/stock",
		map[string]int{"stock": 0}, tokenB)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Свой - может
	rec = ts.SendRequest(t, http.MethodPatch, "/api/v1/products/1/stock",
		map[string]int{"stock": 3}, tokenA)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var product models.Product
	require.NoError(t, ts.DB.First(&product, 1).Error)
	assert.Equal(t, 3, product.Stock)
}

func TestUpdateStock_NegativeRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	_, token := ts.CreateAndLoginUser(t, "seller@test.dev", 3, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/products",
		createProductPayload("Kettle"), token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.SendRequest(t, http.MethodPatch, "/api/v1/products/1/stock",
		map[string]int{"stock": -1}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSetSponsored(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	_, token := ts.CreateAndLoginUser(t, "admin@test.dev", 2, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/products",
		createProductPayload("Kettle"), token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.SendRequest(t, http.MethodPatch, "/api/v1/products/1/sponsored",
		map[string]bool{"is_sponsored": true}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var product models.Product
	require.NoError(t, ts.DB.First(&product, 1).Error)
	assert.True(t, product.IsSponsored)
}

func TestAssignCategoriesTags(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	_, token := ts.CreateAndLoginUser(t, "admin@test.dev", 2, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/categories",
		map[string]string{"name": "Kitchen"}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = ts.SendRequest(t, http.MethodPost, "/api/v1/tags",
		map[string]string{"name": "sale"}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.SendRequest(t, http.MethodPost, "/api/v1/products",
		createProductPayload("Kettle"), token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.SendRequest(t, http.MethodPatch, "/api/v1/products/1/categories-tags",
		map[string][]uint{"category_ids": {1}, "tag_ids": {1}}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.SendRequest(t, http.MethodGet, "/api/v1/products/1", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := helpers.DecodeBody(t, rec)
	product := body["product"].(map[string]interface{})
	assert.Len(t, product["categories"], 1)
	assert.Len(t, product["tags"], 1)
}

func TestAssignCategoriesTags_UnknownIDs(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	_, token := ts.CreateAndLoginUser(t, "admin@test.dev", 2, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/products",
		createProductPayload("Kettle"), token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.SendRequest(t, http.MethodPatch, "/api/v1/products/1/categories-tags",
		map[string][]uint{"category_ids": {42}}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListProducts_Filters(t *testing.T) {
	ts := helpers.NewTestServer(t)
	companyA := ts.CreateCompany(t, "Acme")
	companyB := ts.CreateCompany(t, "Globex")
	_, tokenA := ts.CreateAndLoginUser(t, "sellerA@test.dev", 3, &companyA.ID)
	_, tokenB := ts.CreateAndLoginUser(t, "sellerB@test.dev", 3, &companyB.ID)

	for i := 0; i < 2; i++ {
		rec := ts.SendRequest(t, http.MethodPost, "/api/v1/products",
			createProductPayload(fmt.Sprintf("Kettle %d", i)), tokenA)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/products",
		createProductPayload("Toaster"), tokenB)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Фильтр по компании
	rec = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/v1/products?company_id=%d", companyA.ID), nil, tokenA)
	require.Equal(t, http.StatusOK, rec.Code)
	body := helpers.DecodeBody(t, rec)
	assert.Len(t, body["products"], 2)

	// Поиск по имени
	rec = ts.SendRequest(t, http.MethodGet, "/api/v1/products?search=Toaster", nil, tokenA)
	require.Equal(t, http.StatusOK, rec.Code)
	body = helpers.DecodeBody(t, rec)
	assert.Len(t, body["products"], 1)
}

func TestWishlistFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	_, sellerToken := ts.CreateAndLoginUser(t, "seller@test.dev", 3, &company.ID)
	_, buyerToken := ts.CreateAndLoginUser(t, "buyer@test.dev", 4, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/products",
		createProductPayload("Kettle"), sellerToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Добавление, идемпотентность, листинг, удаление
	rec = ts.SendRequest(t, http.MethodPost, "/api/v1/wishlist/1", nil, buyerToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = ts.SendRequest(t, http.MethodPost, "/api/v1/wishlist/1", nil, buyerToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.SendRequest(t, http.MethodGet, "/api/v1/wishlist", nil, buyerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	body := helpers.DecodeBody(t, rec)
	assert.Len(t, body["wishlist"], 1)

	rec = ts.SendRequest(t, http.MethodDelete, "/api/v1/wishlist/1", nil, buyerToken)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.SendRequest(t, http.MethodDelete, "/api/v1/wishlist/1", nil, buyerToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlist_UnknownProduct(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	_, token := ts.CreateAndLoginUser(t, "buyer@test.dev", 4, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/wishlist/999", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlist_BuyerOnly(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	_, sellerToken := ts.CreateAndLoginUser(t, "seller@test.dev", 3, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/products",
		createProductPayload("Kettle"), sellerToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.SendRequest(t, http.MethodPost, "/api/v1/wishlist/1", nil, sellerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateCategory_SellerForbidden(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	_, token := ts.CreateAndLoginUser(t, "seller@test.dev", 3, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/categories",
		map[string]string{"name": "Kitchen"}, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
