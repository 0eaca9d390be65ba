package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/domain"
	"storefront/internal/navigation"
	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/view"
)

// Deps сервисы, которые обслуживает HTTP-слой
type Deps struct {
	Products *service.ProductService
	Catalog  *service.CatalogService
	Edits    *service.EditSession
	Orders   *service.OrderService
	Cart     *cart.MemoryStore
	Nav      *navigation.History
}

type Server struct {
	engine   *gin.Engine
	products *service.ProductService
	catalog  *service.CatalogService
	edits    *service.EditSession
	orders   *service.OrderService
	cart     *cart.MemoryStore
	nav      *navigation.History
	log      *zap.Logger
}

func NewServer(d Deps, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()
	r.Use(RequestID(), Logger(logger), gin.Recovery())
	s := &Server{
		engine:   r,
		products: d.Products,
		catalog:  d.Catalog,
		edits:    d.Edits,
		orders:   d.Orders,
		cart:     d.Cart,
		nav:      d.Nav,
		log:      logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.engine.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.POST("", s.createProduct)
		products.GET(":id", s.getProduct)
		products.PUT(":id", s.updateProduct)
		products.DELETE(":id", s.deleteProduct)
		products.GET("", s.listCards)
		products.POST(":id/click", s.clickCard)
		products.POST(":id/edit", s.beginEdit)

		v1.GET("/categories", s.listCategories)

		edit := v1.Group("/edit")
		edit.PATCH("", s.changeDraft)
		edit.POST("/image", s.uploadImage)
		edit.POST("/commit", s.commitEdit)
		edit.POST("/discard", s.discardEdit)

		carts := v1.Group("/cart")
		carts.GET("", s.getCart)
		carts.POST("/items", s.addCartItem)
		carts.DELETE("", s.clearCart)

		co := v1.Group("/checkout")
		co.GET("", s.getCheckout)
		co.GET("/status", s.checkoutStatus)
		co.POST("/orders", s.placeOrder)
		co.POST("/continue", s.continueShopping)
		co.DELETE("", s.leaveCheckout)
	}
}

type errorResp struct {
	Error string `json:"error"`
}

func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(mapErrorToStatus(err), errorResp{Error: err.Error()})
}

// Product handlers
type productReq struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func (r productReq) product(id int64) domain.Product {
	return domain.Product{
		ID:          id,
		Title:       r.Title,
		Price:       r.Price,
		Image:       r.Image,
		Category:    r.Category,
		Description: r.Description,
	}
}

// @Summary Create local product
// @Tags products
// @Accept json
// @Produce json
// @Param input body productReq true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} errorResp
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.products.Create(c, req.product(0))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 400 {object} errorResp
// @Failure 404 {object} errorResp
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := s.products.GetByID(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Update local product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param input body productReq true "Update"
// @Success 200 {object} domain.Product
// @Failure 400 {object} errorResp
// @Failure 403 {object} errorResp
// @Failure 404 {object} errorResp
// @Router /products/{id} [put]
func (s *Server) updateProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.products.Update(c, req.product(id))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Delete local product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 400 {object} errorResp
// @Failure 403 {object} errorResp
// @Failure 404 {object} errorResp
// @Router /products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.catalog.Delete(c, id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List product cards
// @Tags products
// @Produce json
// @Param q query string false "Title contains"
// @Param category query string false "Category"
// @Param min_price query number false "Min price"
// @Param max_price query number false "Max price"
// @Success 200 {array} view.Card
// @Router /products [get]
func (s *Server) listCards(c *gin.Context) {
	var f repository.ProductFilter
	if q := c.Query("q"); q != "" {
		f.TitleSubstring = q
	}
	f.Category = c.Query("category")
	if v := c.Query("min_price"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &x
		}
	}
	if v := c.Query("max_price"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &x
		}
	}
	cards, err := s.catalog.Cards(c, f)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

type clickReq struct {
	Target string `json:"target"`
}

type clickResp struct {
	Target           string `json:"target"`
	DefaultPrevented bool   `json:"defaultPrevented"`
	Location         string `json:"location"`
}

// @Summary Click a product card
// @Description Empty target is the card body; edit, delete, save and cancel are the card affordances.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param input body clickReq true "Click target"
// @Success 200 {object} clickResp
// @Failure 400 {object} errorResp
// @Failure 404 {object} errorResp
// @Router /products/{id}/click [post]
func (s *Server) clickCard(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req clickReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ev, err := s.catalog.Click(c, id, req.Target, s.nav)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clickResp{Target: ev.Target, DefaultPrevented: ev.DefaultPrevented(), Location: ev.Location})
}

// @Summary List categories
// @Tags products
// @Produce json
// @Success 200 {array} view.Option
// @Router /categories [get]
func (s *Server) listCategories(c *gin.Context) {
	cats, err := s.products.Categories(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	out := make([]view.Option, 0, len(cats))
	for _, cat := range cats {
		out = append(out, view.Option{Value: cat, Label: view.CategoryLabel(cat)})
	}
	c.JSON(http.StatusOK, out)
}

// Edit session handlers

// @Summary Begin editing a local product
// @Tags edit
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} view.Card
// @Failure 403 {object} errorResp
// @Failure 404 {object} errorResp
// @Router /products/{id}/edit [post]
func (s *Server) beginEdit(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if _, err := s.edits.Begin(c, id); err != nil {
		s.fail(c, err)
		return
	}
	s.respondEditCard(c)
}

func (s *Server) respondEditCard(c *gin.Context) {
	card, err := s.catalog.EditCard(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

type changeReq struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// @Summary Change a draft field
// @Tags edit
// @Accept json
// @Produce json
// @Param input body changeReq true "Field change"
// @Success 200 {object} view.Card
// @Failure 400 {object} errorResp
// @Failure 409 {object} errorResp
// @Router /edit [patch]
func (s *Server) changeDraft(c *gin.Context) {
	var req changeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	card, err := s.catalog.EditCard(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := card.Edit.Input(req.Field, req.Value); err != nil {
		s.fail(c, err)
		return
	}
	s.respondEditCard(c)
}

// @Summary Upload a replacement image
// @Tags edit
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image"
// @Success 200 {object} view.Card
// @Failure 400 {object} errorResp
// @Failure 409 {object} errorResp
// @Router /edit/image [post]
func (s *Server) uploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, service.MaxImageSize+1))
	if err != nil {
		s.fail(c, err)
		return
	}
	card, err := s.catalog.EditCard(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := card.Edit.Upload(data); err != nil {
		s.fail(c, err)
		return
	}
	s.respondEditCard(c)
}

// @Summary Save the draft
// @Tags edit
// @Produce json
// @Success 200 {object} view.Card
// @Failure 400 {object} errorResp
// @Failure 409 {object} errorResp
// @Router /edit/commit [post]
func (s *Server) commitEdit(c *gin.Context) {
	card, err := s.catalog.EditCard(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	if _, err := card.Click(c, view.TargetSave, s.nav); err != nil {
		s.fail(c, err)
		return
	}
	saved, err := s.catalog.Card(c, card.Key)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// @Summary Discard the draft
// @Tags edit
// @Success 204
// @Failure 409 {object} errorResp
// @Router /edit/discard [post]
func (s *Server) discardEdit(c *gin.Context) {
	card, err := s.catalog.EditCard(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	if _, err := card.Click(c, view.TargetCancel, s.nav); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Cart handlers
type cartResp struct {
	Items  []domain.CartItem `json:"items"`
	Totals domain.CartTotals `json:"totals"`
}

func (s *Server) cartState() cartResp {
	return cartResp{Items: s.cart.Items(), Totals: s.cart.Totals()}
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} cartResp
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.cartState())
}

// @Summary Add item to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param input body domain.CartItem true "Item"
// @Success 201 {object} cartResp
// @Failure 400 {object} errorResp
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var item domain.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.cart.Add(item); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, s.cartState())
}

// @Summary Clear cart
// @Tags cart
// @Success 204
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	s.cart.Clear()
	c.Status(http.StatusNoContent)
}

// Checkout handlers

// @Summary Open or refresh the checkout page
// @Description Mounts a checkout flow when none is active. An empty cart with no confirmation showing redirects to the cart page once.
// @Tags checkout
// @Produce json
// @Success 200 {object} checkout.View
// @Router /checkout [get]
func (s *Server) getCheckout(c *gin.Context) {
	c.JSON(http.StatusOK, s.orders.Open())
}

// @Summary Checkout page status
// @Description Renders the mounted checkout page without mounting a new one, so a finished order stays visible.
// @Tags checkout
// @Produce json
// @Success 200 {object} checkout.View
// @Failure 409 {object} errorResp
// @Router /checkout/status [get]
func (s *Server) checkoutStatus(c *gin.Context) {
	v, err := s.orders.Status()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Place order
// @Tags checkout
// @Produce json
// @Success 202 {object} checkout.View
// @Failure 409 {object} errorResp
// @Router /checkout/orders [post]
func (s *Server) placeOrder(c *gin.Context) {
	v, err := s.orders.PlaceOrder()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, v)
}

// @Summary Continue shopping
// @Tags checkout
// @Produce json
// @Success 200 {object} checkout.View
// @Failure 409 {object} errorResp
// @Router /checkout/continue [post]
func (s *Server) continueShopping(c *gin.Context) {
	v, err := s.orders.ContinueShopping()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Leave the checkout page
// @Tags checkout
// @Success 204
// @Router /checkout [delete]
func (s *Server) leaveCheckout(c *gin.Context) {
	s.orders.Leave()
	c.Status(http.StatusNoContent)
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidImage),
		errors.Is(err, cart.ErrInvalidItem),
		errors.Is(err, view.ErrUnknownTarget):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotEditable):
		return http.StatusForbidden
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNoSession),
		errors.Is(err, checkout.ErrBusy),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrInvalidState),
		errors.Is(err, checkout.ErrClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
