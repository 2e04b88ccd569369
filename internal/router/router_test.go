package router

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/pricing/api/handler"
	"github.com/fastygo/pricing/domain"
	"github.com/fastygo/pricing/internal/infrastructure/monitor"
	"github.com/fastygo/pricing/pkg/clock"
	"github.com/fastygo/pricing/repository/memory"
	catalogUC "github.com/fastygo/pricing/usecase/catalog"
	pricingUC "github.com/fastygo/pricing/usecase/pricing"
)

type envelope struct {
	Status string          `json:"status"`
	Code   string          `json:"code"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
	Meta   struct {
		Total int `json:"total"`
	} `json:"meta"`
}

type RouterTestSuite struct {
	suite.Suite
	handler fasthttp.RequestHandler
	clock   *clock.MockClock
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.clock = clock.NewMockClock(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	products := memory.NewProductRepository(memory.NewProductStore(memory.SeedProducts()...))
	profiles := memory.NewProfileRepository(memory.NewProfileStore(), s.clock)

	catalog := catalogUC.New(products, nil, nil)
	pricing := pricingUC.New(products, profiles, s.clock, nil)
	mon := monitor.New(nil, time.Second, nil)

	r := New(Handlers{
		Product:  apiHandler.NewProductHandler(catalog, nil, nil),
		Profile:  apiHandler.NewProfileHandler(pricing, nil, nil),
		Pricing:  apiHandler.NewPricingHandler(pricing, nil, nil),
		Metadata: apiHandler.NewMetadataHandler(catalog, nil, nil),
		Health:   apiHandler.NewHealthHandler(mon, pricing, nil, nil),
	}, Options{EnableMetrics: true})
	s.handler = r.Handler
}

func (s *RouterTestSuite) serve(method, uri, body string) *fasthttp.RequestCtx {
	ctx := new(fasthttp.RequestCtx)
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.Header.SetContentType("application/json")
		ctx.Request.SetBodyString(body)
	}

	s.handler(ctx)
	return ctx
}

func (s *RouterTestSuite) do(method, uri, body string) (int, envelope) {
	ctx := s.serve(method, uri, body)

	var env envelope
	if len(ctx.Response.Body()) > 0 && string(ctx.Response.Header.ContentType()) == "application/json" {
		s.Require().NoError(json.Unmarshal(ctx.Response.Body(), &env), string(ctx.Response.Body()))
	}
	return ctx.Response.StatusCode(), env
}

func (s *RouterTestSuite) TestListProducts() {
	status, env := s.do(http.MethodGet, "/api/products", "")

	s.Equal(http.StatusOK, status)
	s.Equal("success", env.Status)
	s.Equal(6, env.Meta.Total)

	var products []domain.Product
	s.Require().NoError(json.Unmarshal(env.Data, &products))
	s.Equal("1", products[0].ID)
}

func (s *RouterTestSuite) TestListProducts_Filtered() {
	status, env := s.do(http.MethodGet, "/api/products?brand=Koyama%20Wines&search=riesling", "")

	s.Equal(http.StatusOK, status)
	s.Equal(2, env.Meta.Total)
}

func (s *RouterTestSuite) TestGetProduct_NotFound() {
	status, env := s.do(http.MethodGet, "/api/products/999", "")

	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", env.Code)
	s.Equal("Product not found", env.Error)
}

func (s *RouterTestSuite) TestCreateProduct() {
	body := `{"title":"Cloudy Bay","skuCode":"CB1","brand":"Cloudy Bay","categoryId":"Alcoholic Beverage","subCategoryId":"Wine","segmentId":"White","globalWholesalePrice":99.5}`
	status, env := s.do(http.MethodPost, "/api/products", body)

	s.Require().Equal(http.StatusCreated, status)
	var product domain.Product
	s.Require().NoError(json.Unmarshal(env.Data, &product))
	s.NotEmpty(product.ID)
	s.Equal(99.5, product.GlobalWholesalePrice)

	status, _ = s.do(http.MethodGet, "/api/products/"+product.ID, "")
	s.Equal(http.StatusOK, status)
}

func (s *RouterTestSuite) TestCreateProduct_Invalid() {
	cases := map[string]string{
		"bad json":         `{`,
		"missing title":    `{"skuCode":"X","brand":"B","categoryId":"C","subCategoryId":"Wine","globalWholesalePrice":1}`,
		"bad sub-category": `{"title":"T","skuCode":"X","brand":"B","categoryId":"C","subCategoryId":"Mead","globalWholesalePrice":1}`,
		"bad segment":      `{"title":"T","skuCode":"X","brand":"B","categoryId":"C","subCategoryId":"Wine","segmentId":"Blue","globalWholesalePrice":1}`,
		"negative price":   `{"title":"T","skuCode":"X","brand":"B","categoryId":"C","subCategoryId":"Wine","globalWholesalePrice":-1}`,
		"missing price":    `{"title":"T","skuCode":"X","brand":"B","categoryId":"C","subCategoryId":"Wine"}`,
	}
	for name, body := range cases {
		status, env := s.do(http.MethodPost, "/api/products", body)
		s.Equal(http.StatusBadRequest, status, name)
		s.Equal("INVALID", env.Code, name)
	}
}

func (s *RouterTestSuite) TestUpdateProduct_IDIsImmutable() {
	status, env := s.do(http.MethodPut, "/api/products/2", `{"id":"hijack","globalWholesalePrice":130}`)

	s.Require().Equal(http.StatusOK, status)
	var product domain.Product
	s.Require().NoError(json.Unmarshal(env.Data, &product))
	s.Equal("2", product.ID)
	s.Equal(130.0, product.GlobalWholesalePrice)

	status, _ = s.do(http.MethodGet, "/api/products/hijack", "")
	s.Equal(http.StatusNotFound, status)
}

func (s *RouterTestSuite) TestDeleteProduct() {
	ctx := s.serve(http.MethodDelete, "/api/products/3", "")
	s.Equal(http.StatusNoContent, ctx.Response.StatusCode())
	s.Empty(ctx.Response.Body())

	status, env := s.do(http.MethodDelete, "/api/products/3", "")
	s.Equal(http.StatusNotFound, status)
	s.Equal("Product not found", env.Error)
}

func (s *RouterTestSuite) TestMetadata() {
	status, env := s.do(http.MethodGet, "/api/metadata/brands", "")
	s.Require().Equal(http.StatusOK, status)

	var brands []string
	s.Require().NoError(json.Unmarshal(env.Data, &brands))
	s.Equal([]string{"High Garden", "Koyama Wines", "Lacourte-Godbillon"}, brands)

	for _, path := range []string{"/api/metadata/categories", "/api/metadata/sub-categories", "/api/metadata/segments"} {
		status, _ := s.do(http.MethodGet, path, "")
		s.Equal(http.StatusOK, status, path)
	}
}

func (s *RouterTestSuite) TestCalculate() {
	body := `{"productIds":["1","missing","2"],"adjustment":{"adjustmentType":"Dynamic","adjustmentIncrement":"Increase","value":10}}`
	status, env := s.do(http.MethodPost, "/api/pricing-profiles/calculate", body)

	s.Require().Equal(http.StatusOK, status)
	var pricings []domain.ProductPricing
	s.Require().NoError(json.Unmarshal(env.Data, &pricings))
	s.Require().Len(pricings, 2)
	s.Equal("1", pricings[0].ProductID)
	s.InDelta(306.97, pricings[0].NewPrice, 1e-9)
	s.Equal("2", pricings[1].ProductID)
	s.InDelta(132.0, pricings[1].NewPrice, 1e-9)
}

func (s *RouterTestSuite) TestCalculate_BadRequests() {
	cases := []struct {
		body    string
		message string
	}{
		{`{"adjustment":{"adjustmentType":"Fixed","adjustmentIncrement":"Increase","value":1}}`, "productIds must be an array"},
		{`{"productIds":"1","adjustment":{"adjustmentType":"Fixed","adjustmentIncrement":"Increase","value":1}}`, "productIds must be an array"},
		{`{"productIds":["1"]}`, "adjustment is required"},
		{`{"productIds":["1"],"adjustment":{"adjustmentType":"Dynamic","adjustmentIncrement":"Increase","value":101}}`, "Percentage adjustment cannot exceed 100%"},
		{`{"productIds":["1"],"adjustment":{"adjustmentType":"Fixed","adjustmentIncrement":"Increase","value":-1}}`, "Adjustment value cannot be negative"},
	}
	for _, tc := range cases {
		status, env := s.do(http.MethodPost, "/api/pricing-profiles/calculate", tc.body)
		s.Equal(http.StatusBadRequest, status, tc.body)
		s.Equal(tc.message, env.Error, tc.body)
	}
}

func (s *RouterTestSuite) TestValidate() {
	status, env := s.do(http.MethodPost, "/api/pricing-profiles/validate",
		`{"basedOnPrice":100,"adjustment":{"adjustmentType":"Fixed","adjustmentIncrement":"Decrease","value":150}}`)
	s.Equal(http.StatusBadRequest, status)
	s.Equal("Adjustment would result in negative price", env.Error)

	status, env = s.do(http.MethodPost, "/api/pricing-profiles/validate",
		`{"basedOnPrice":100,"adjustment":{"adjustmentType":"Fixed","adjustmentIncrement":"Decrease","value":40}}`)
	s.Require().Equal(http.StatusOK, status)
	var result struct {
		Valid    bool    `json:"valid"`
		NewPrice float64 `json:"newPrice"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &result))
	s.True(result.Valid)
	s.Equal(60.0, result.NewPrice)
}

func (s *RouterTestSuite) TestProfileCRUD() {
	status, env := s.do(http.MethodPost, "/api/pricing-profiles",
		`{"name":"Summer","basedOnProfile":"global","productPricings":[{"productId":"1","basedOnPrice":279.06,"adjustment":{"adjustmentType":"Fixed","adjustmentIncrement":"Increase","value":10},"newPrice":289.06}]}`)
	s.Require().Equal(http.StatusCreated, status)

	var created domain.PricingProfile
	s.Require().NoError(json.Unmarshal(env.Data, &created))
	s.NotEmpty(created.ID)
	s.True(s.clock.Now().Equal(created.CreatedAt))

	s.clock.Advance(time.Hour)
	status, env = s.do(http.MethodPut, "/api/pricing-profiles/"+created.ID, `{"name":"Late Summer"}`)
	s.Require().Equal(http.StatusOK, status)
	var updated domain.PricingProfile
	s.Require().NoError(json.Unmarshal(env.Data, &updated))
	s.Equal("Late Summer", updated.Name)
	s.True(created.CreatedAt.Equal(updated.CreatedAt))
	s.True(updated.UpdatedAt.After(created.UpdatedAt))
	s.Len(updated.ProductPricings, 1)

	status, env = s.do(http.MethodGet, "/api/pricing-profiles", "")
	s.Equal(http.StatusOK, status)
	s.Equal(1, env.Meta.Total)

	deleted := s.serve(http.MethodDelete, "/api/pricing-profiles/"+created.ID, "")
	s.Equal(http.StatusNoContent, deleted.Response.StatusCode())
	s.Empty(deleted.Response.Body())

	status, env = s.do(http.MethodGet, "/api/pricing-profiles/"+created.ID, "")
	s.Equal(http.StatusNotFound, status)
	s.Equal("Pricing profile not found", env.Error)
}

func (s *RouterTestSuite) TestCreateProfile_MissingFields() {
	status, env := s.do(http.MethodPost, "/api/pricing-profiles", `{"name":"No pricings","basedOnProfile":"global"}`)

	s.Equal(http.StatusBadRequest, status)
	s.Equal("Missing required fields: name, basedOnProfile, productPricings", env.Error)
}

func (s *RouterTestSuite) TestUpdateProfile_NotFound() {
	status, env := s.do(http.MethodPut, "/api/pricing-profiles/missing", `{"name":"x"}`)

	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", env.Code)
}

func (s *RouterTestSuite) TestHealth() {
	status, env := s.do(http.MethodGet, "/health", "")

	s.Require().Equal(http.StatusOK, status)
	var payload struct {
		Store struct {
			Products        int `json:"products"`
			PricingProfiles int `json:"pricingProfiles"`
		} `json:"store"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &payload))
	s.Equal(6, payload.Store.Products)
	s.Equal(0, payload.Store.PricingProfiles)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	status, env := s.do(http.MethodGet, "/api/nope", "")

	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", env.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := New(Handlers{
		Health: apiHandler.NewHealthHandler(nil, pricingUC.New(
			memory.NewProductRepository(nil), memory.NewProfileRepository(nil, nil), nil, nil), nil, nil),
		Product:  apiHandler.NewProductHandler(nil, nil, nil),
		Profile:  apiHandler.NewProfileHandler(nil, nil, nil),
		Pricing:  apiHandler.NewPricingHandler(nil, nil, nil),
		Metadata: apiHandler.NewMetadataHandler(nil, nil, nil),
	}, Options{EnableMetrics: true})

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(http.MethodGet)
	ctx.Request.SetRequestURI("/metrics")
	r.Handler(&ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "http_requests_in_flight")
}
