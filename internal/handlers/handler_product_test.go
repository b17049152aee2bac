package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func mug() *domain.Product {
	return &domain.Product{
		ProductID: 3,
		Name:      "Mug",
		Price:     decimal.RequireFromString("10"),
	}
}

// --- Product Test Cases ---

func (suite *HandlerTestSuite) TestListProducts_Success() {
	suite.mockProductService.On("ListProducts", mock.Anything,
		domain.ListFilter{Search: "mu", Page: 1, PerPage: 5},
	).Return(&domain.Page[domain.Product]{Items: []domain.Product{*mug()}, Total: 1, Page: 1, PerPage: 5}, nil).Once()

	w := suite.authed(http.MethodGet, "/products?search=mu&per_page=5", "")

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decode(w)
	suite.Equal(1, env.Meta.LastPage)
	var items []dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &items))
	suite.Require().Len(items, 1)
	suite.Equal("Mug", items[0].Name)
	suite.Nil(items[0].CurrencyID)
}

func (suite *HandlerTestSuite) TestCreateProduct() {
	suite.Run("success", func() {
		suite.mockProductService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req dto.CreateProductRequest) bool {
			return req.Name == "Mug" && req.Price.Equal(decimal.NewFromInt(10)) && req.CurrencyID == nil
		})).Return(mug(), nil).Once()

		w := suite.authed(http.MethodPost, "/products", `{"name":"Mug","price":10.0}`)

		suite.Equal(http.StatusCreated, w.Code)
		suite.Equal("Product created successfully", suite.decode(w).Message)
	})

	suite.Run("unknown currency", func() {
		suite.mockProductService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req dto.CreateProductRequest) bool {
			return req.CurrencyID != nil && *req.CurrencyID == 404
		})).Return(nil, apperrors.NewFieldValidationError("currency_id", "The selected currency id is invalid.")).Once()

		w := suite.authed(http.MethodPost, "/products", `{"name":"Mug","price":10,"currency_id":404}`)

		suite.Equal(http.StatusUnprocessableEntity, w.Code)
		env := suite.decode(w)
		suite.Equal("Validation failed", env.Message)
		suite.Equal("The selected currency id is invalid.", env.Errors["currency_id"])
	})

	suite.Run("negative costs", func() {
		w := suite.authed(http.MethodPost, "/products", `{"name":"Mug","price":-1,"tax_cost":-2}`)

		suite.Equal(http.StatusUnprocessableEntity, w.Code)
		env := suite.decode(w)
		suite.Contains(env.Errors, "price")
		suite.Contains(env.Errors, "tax_cost")
	})

	suite.Run("name too long", func() {
		long := make([]byte, 256)
		for i := range long {
			long[i] = 'a'
		}
		w := suite.authed(http.MethodPost, "/products", `{"name":"`+string(long)+`","price":1}`)

		suite.Equal(http.StatusUnprocessableEntity, w.Code)
		suite.Equal("The name field must not be greater than 255 characters.", suite.decode(w).Errors["name"])
	})
}

func (suite *HandlerTestSuite) TestUpdateProduct_OnlyPatchableFields() {
	updated := mug()
	updated.Name = "Big Mug"
	suite.mockProductService.On("UpdateProduct", mock.Anything, int64(3), mock.MatchedBy(func(req dto.UpdateProductRequest) bool {
		return req.Name != nil && *req.Name == "Big Mug" && req.Price == nil && req.Description == nil
	})).Return(updated, nil).Once()

	// currency_id is not part of the update payload and is ignored.
	w := suite.authed(http.MethodPut, "/products/3", `{"name":"Big Mug","currency_id":5}`)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(suite.decode(w).Data, &got))
	suite.Equal("Big Mug", got.Name)
}

func (suite *HandlerTestSuite) TestDeleteProduct() {
	suite.mockProductService.On("DeleteProduct", mock.Anything, int64(3)).Return(nil).Once()
	suite.mockProductService.On("DeleteProduct", mock.Anything, int64(4)).
		Return(apperrors.NewNotFoundError("Product not found")).Once()

	suite.Equal(http.StatusOK, suite.authed(http.MethodDelete, "/products/3", "").Code)

	w := suite.authed(http.MethodDelete, "/products/4", "")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"success":false,"message":"Product not found"}`, w.Body.String())
}

// --- Product Price Test Cases ---

func (suite *HandlerTestSuite) TestCreateProductPrice_Success() {
	currencyID := int64(7)
	detail := &domain.ProductPriceDetail{
		ProductPrice: domain.ProductPrice{
			ProductPriceID: 1,
			ProductID:      3,
			CurrencyID:     currencyID,
			Price:          decimal.RequireFromString("9.2"),
		},
		Product:  mug(),
		Currency: *euro(),
	}
	suite.mockPriceService.On("CreateProductPrice", mock.Anything, int64(3), mock.MatchedBy(func(req dto.CreateProductPriceRequest) bool {
		return req.Price.Equal(decimal.RequireFromString("9.2")) && *req.CurrencyID == currencyID && *req.ProductID == 3
	})).Return(detail, nil).Once()

	w := suite.authed(http.MethodPost, "/products/3/prices", `{"price":9.2,"currency_id":7,"product_id":3}`)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.ProductPriceResponse
	suite.Require().NoError(json.Unmarshal(suite.decode(w).Data, &got))
	suite.Equal("EUR", got.Currency.Symbol)
	suite.Require().NotNil(got.Product)
	suite.Equal("Mug", got.Product.Name)
	suite.True(got.Price.Equal(decimal.RequireFromString("9.2")))
}

func (suite *HandlerTestSuite) TestCreateProductPrice_Failures() {
	suite.Run("product not found", func() {
		suite.mockPriceService.On("CreateProductPrice", mock.Anything, int64(404), mock.Anything).
			Return(nil, apperrors.NewNotFoundError("Product not found")).Once()

		w := suite.authed(http.MethodPost, "/products/404/prices", `{"price":1}`)

		suite.Equal(http.StatusNotFound, w.Code)
		suite.Equal("Product not found", suite.decode(w).Message)
	})

	suite.Run("price required", func() {
		w := suite.authed(http.MethodPost, "/products/3/prices", `{"currency_id":7}`)

		suite.Equal(http.StatusUnprocessableEntity, w.Code)
		suite.Equal("The price field is required.", suite.decode(w).Errors["price"])
	})

	suite.Run("persistence failure keeps generic message", func() {
		suite.mockPriceService.On("CreateProductPrice", mock.Anything, int64(5), mock.Anything).
			Return(nil, apperrors.NewAppError(http.StatusUnprocessableEntity, "Error creating product price", errors.New("disk full"))).Once()

		w := suite.authed(http.MethodPost, "/products/5/prices", `{"price":1}`)

		suite.Equal(http.StatusUnprocessableEntity, w.Code)
		suite.JSONEq(`{"success":false,"message":"Error creating product price"}`, w.Body.String())
	})
}

func (suite *HandlerTestSuite) TestListProductPrices() {
	suite.Run("in creation order", func() {
		prices := []domain.ProductPriceDetail{
			{ProductPrice: domain.ProductPrice{ProductPriceID: 1, ProductID: 3, CurrencyID: 7, Price: decimal.NewFromInt(9)}, Currency: *euro()},
			{ProductPrice: domain.ProductPrice{ProductPriceID: 2, ProductID: 3, CurrencyID: 7, Price: decimal.NewFromInt(8)}, Currency: *euro()},
		}
		suite.mockPriceService.On("ListProductPrices", mock.Anything, int64(3)).Return(prices, nil).Once()

		w := suite.authed(http.MethodGet, "/products/3/prices", "")

		suite.Equal(http.StatusOK, w.Code)
		var got []dto.ProductPriceResponse
		suite.Require().NoError(json.Unmarshal(suite.decode(w).Data, &got))
		suite.Require().Len(got, 2)
		suite.Equal(int64(1), got[0].ID)
		suite.Equal(int64(2), got[1].ID)
		suite.Nil(got[0].Product)
	})

	suite.Run("product not found", func() {
		suite.mockPriceService.On("ListProductPrices", mock.Anything, int64(404)).
			Return(nil, apperrors.NewNotFoundError("Product not found")).Once()

		w := suite.authed(http.MethodGet, "/products/404/prices", "")

		suite.Equal(http.StatusNotFound, w.Code)
	})
}
