package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allowAll(c *gin.Context) {
	c.Next()
}

func newCategoryRouter(fake *fakeCategoryUseCase) *gin.Engine {
	router := gin.New()
	handler := NewCategoryHandler(fake, testLogger())
	handler.RegisterRoutes(router, allowAll)
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeErrorBody(t *testing.T, recorder *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestCreateCategoryReturnsCreated(t *testing.T) {
	fake := &fakeCategoryUseCase{}
	router := newCategoryRouter(fake)

	recorder := performRequest(t, router, http.MethodPost, "/categories", `{"name":"Electronics","description":"Gadgets"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var created domain.Category
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Electronics", created.Name)
	assert.Equal(t, "Gadgets", created.Description)
}

func TestCreateCategoryValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"description":"no name"}`},
		{name: "empty name", body: `{"name":""}`},
		{name: "malformed json", body: `{"name":`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newCategoryRouter(&fakeCategoryUseCase{})

			recorder := performRequest(t, router, http.MethodPost, "/categories", tc.body)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			body := decodeErrorBody(t, recorder)
			assert.Equal(t, "Category was not created", body.Message)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestCreateCategoryUseCaseValidation(t *testing.T) {
	fake := &fakeCategoryUseCase{err: domain.ErrValidation}
	router := newCategoryRouter(fake)

	recorder := performRequest(t, router, http.MethodPost, "/categories", `{"name":"x"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetCategoryByID(t *testing.T) {
	fake := &fakeCategoryUseCase{category: &domain.Category{ID: 7, Name: "Books", Products: []domain.Product{}}}
	router := newCategoryRouter(fake)

	recorder := performRequest(t, router, http.MethodGet, "/categories/7", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 7, fake.lastID)

	var got domain.Category
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, "Books", got.Name)

	// A category with nothing in it still carries an empty list, not a
	// missing key.
	assert.Contains(t, recorder.Body.String(), `"products":[]`)
}

func TestGetCategoryByIDNotFound(t *testing.T) {
	fake := &fakeCategoryUseCase{err: domain.ErrNotFound}
	router := newCategoryRouter(fake)

	recorder := performRequest(t, router, http.MethodGet, "/categories/99", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeErrorBody(t, recorder)
	assert.Equal(t, "Category not found", body.Message)
}

func TestGetCategoryByIDBadParam(t *testing.T) {
	router := newCategoryRouter(&fakeCategoryUseCase{})

	for _, path := range []string{"/categories/abc", "/categories/0", "/categories/-3"} {
		recorder := performRequest(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "path %s", path)
	}
}

func TestUpdateCategoryReturnsCreated(t *testing.T) {
	fake := &fakeCategoryUseCase{category: &domain.Category{ID: 3, Name: "Renamed"}}
	router := newCategoryRouter(fake)

	recorder := performRequest(t, router, http.MethodPut, "/categories/3", `{"name":"Renamed"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 3, fake.lastID)
	require.NotNil(t, fake.lastUpdate.Name)
	assert.Equal(t, "Renamed", *fake.lastUpdate.Name)
	assert.Nil(t, fake.lastUpdate.Description)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	fake := &fakeCategoryUseCase{err: domain.ErrNotFound}
	router := newCategoryRouter(fake)

	recorder := performRequest(t, router, http.MethodPut, "/categories/42", `{"name":"x"}`)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteCategoryReturnsNoContent(t *testing.T) {
	fake := &fakeCategoryUseCase{}
	router := newCategoryRouter(fake)

	recorder := performRequest(t, router, http.MethodDelete, "/categories/5", "")

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, 5, fake.lastID)
	assert.Empty(t, recorder.Body.String())
}

func TestDeleteCategoryNotFound(t *testing.T) {
	fake := &fakeCategoryUseCase{err: domain.ErrNotFound}
	router := newCategoryRouter(fake)

	recorder := performRequest(t, router, http.MethodDelete, "/categories/5", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListCategories(t *testing.T) {
	fake := &fakeCategoryUseCase{categories: []domain.Category{
		{ID: 1, Name: "Books"},
		{ID: 2, Name: "Electronics"},
	}}
	router := newCategoryRouter(fake)

	recorder := performRequest(t, router, http.MethodGet, "/categories", "")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var got []domain.Category
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListCategoryProducts(t *testing.T) {
	fake := &fakeCategoryUseCase{products: []domain.Product{
		{ID: 1, Name: "Laptop", CategoryID: 2},
	}}
	router := newCategoryRouter(fake)

	recorder := performRequest(t, router, http.MethodGet, "/categories/2/products", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 2, fake.lastID)

	var got []domain.Product
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Laptop", got[0].Name)
}

func TestListCategoryProductsNotFound(t *testing.T) {
	fake := &fakeCategoryUseCase{err: domain.ErrNotFound}
	router := newCategoryRouter(fake)

	recorder := performRequest(t, router, http.MethodGet, "/categories/99/products", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
