package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/divami/cadence/internal/api/metrics"
	"github.com/divami/cadence/internal/core/ports"
)

// maxImageBytes caps uploaded catalog images at 5 MiB.
const maxImageBytes = 5 << 20

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns the whole catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  productResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductListResponse(products))
}

// Get returns one product by id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productService.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// GetImage serves the stored image blob with its original content type.
//
// @Summary      Get a product image
// @Tags         products
// @Produce      octet-stream
// @Param        id  path  string  true  "Product id"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /products/{id}/image [get]
func (h *ProductHandler) GetImage(c echo.Context) error {
	image, err := h.productService.GetProductImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, image.ContentType, image.Data)
}

// Create adds a product without an image.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.CreateProduct(c.Request().Context(), toProductInput(req), nil)
	if err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// CreateWithImage adds a product from a multipart form: a "product" part
// holding the JSON document and an "image" file part.
//
// @Summary      Create a product with an image
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        product  formData  string  true  "Product details as JSON"
// @Param        image    formData  file    true  "Product image"
// @Success      201      {object}  productResponse
// @Failure      400      {object}  map[string]string
// @Router       /products/with-image [post]
func (h *ProductHandler) CreateWithImage(c echo.Context) error {
	req, image, err := bindProductForm(c)
	if err != nil {
		return err
	}

	product, err := h.productService.CreateProduct(c.Request().Context(), toProductInput(req), image)
	if err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update replaces a product's fields, keeping the stored image.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  productResponse
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.UpdateProduct(c.Request().Context(), c.Param("id"), toProductInput(req), nil)
	if err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// UpdateWithImage replaces a product's fields and its image.
//
// @Summary      Update a product and its image
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Product id"
// @Param        product  formData  string  true  "Product details as JSON"
// @Param        image    formData  file    true  "Product image"
// @Success      200      {object}  productResponse
// @Failure      404      {object}  map[string]string
// @Router       /products/{id}/with-image [put]
func (h *ProductHandler) UpdateWithImage(c echo.Context) error {
	req, image, err := bindProductForm(c)
	if err != nil {
		return err
	}

	product, err := h.productService.UpdateProduct(c.Request().Context(), c.Param("id"), toProductInput(req), image)
	if err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete removes a product permanently.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// bindProductForm decodes the multipart variant: a JSON "product" field plus
// an "image" file.
func bindProductForm(c echo.Context) (productRequest, *ports.ImageInput, error) {
	var req productRequest

	raw := c.FormValue("product")
	if raw == "" {
		return req, nil, echo.NewHTTPError(http.StatusBadRequest, "missing product part")
	}
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return req, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid product payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return req, nil, echo.NewHTTPError(http.StatusBadRequest, "missing image part")
	}
	if fileHeader.Size > maxImageBytes {
		return req, nil, echo.NewHTTPError(http.StatusBadRequest, "image too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return req, nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return req, nil, err
	}

	return req, &ports.ImageInput{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
