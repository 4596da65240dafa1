package server

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rezonia/invoicing/internal/model"
	"github.com/rezonia/invoicing/internal/order"
	"github.com/rezonia/invoicing/internal/render"
)

// RequestIDHeader carries the request id on every response
const RequestIDHeader = "X-Request-ID"

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool

	// Sequence numbers created invoices. A fresh sequence is used when nil.
	Sequence *model.Sequence
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
	store  *Store
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID())
	if config.Debug {
		router.Use(gin.Logger())
	}

	seq := config.Sequence
	if seq == nil {
		seq = model.NewSequence()
	}

	s := &Server{
		config: config,
		router: router,
		store:  NewStore(seq),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/invoices", s.handleList)
		v1.POST("/invoices", s.handleCreate)
		v1.GET("/invoices/:number", s.handleGet)
		v1.POST("/invoices/:number/items", s.handleAddItem)
		v1.GET("/invoices/:number/printed", s.handlePrinted)
		v1.GET("/invoices/:number/export", s.handleExport)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleList(c *gin.Context) {
	c.JSON(http.StatusOK, ListResponse{Numbers: s.store.Numbers()})
}

func (s *Server) handleCreate(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	o, err := order.Parse(bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order", Details: err.Error()})
		return
	}

	inv, err := s.store.Create(o)
	if err != nil {
		writeModelError(c, err)
		return
	}

	c.JSON(http.StatusCreated, InvoiceResponse{Invoice: render.Summarize(inv)})
}

func (s *Server) handleGet(c *gin.Context) {
	number, ok := invoiceNumber(c)
	if !ok {
		return
	}

	var summary render.Summary
	if !s.store.View(number, func(inv *model.Invoice) { summary = render.Summarize(inv) }) {
		notFound(c, number)
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{Invoice: summary})
}

func (s *Server) handleAddItem(c *gin.Context) {
	number, ok := invoiceNumber(c)
	if !ok {
		return
	}

	body, ok := readBody(c)
	if !ok {
		return
	}

	item, err := order.ParseItem(bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item", Details: err.Error()})
		return
	}

	product, err := item.Product()
	if err != nil {
		writeModelError(c, err)
		return
	}

	var summary render.Summary
	found, err := s.store.Update(number, func(inv *model.Invoice) error {
		if err := inv.AddProducts(product, item.Qty()); err != nil {
			return err
		}
		summary = render.Summarize(inv)
		return nil
	})
	if !found {
		notFound(c, number)
		return
	}
	if err != nil {
		writeModelError(c, err)
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{Invoice: summary})
}

func (s *Server) handlePrinted(c *gin.Context) {
	number, ok := invoiceNumber(c)
	if !ok {
		return
	}

	var printed string
	if !s.store.View(number, func(inv *model.Invoice) { printed = inv.PrintedVersion() }) {
		notFound(c, number)
		return
	}

	c.String(http.StatusOK, printed)
}

func (s *Server) handleExport(c *gin.Context) {
	number, ok := invoiceNumber(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "pdf")
	exporter, contentType, ok := render.ForFormat(format)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported export format", Details: format})
		return
	}

	var buf bytes.Buffer
	var err error
	if !s.store.View(number, func(inv *model.Invoice) { err = exporter(&buf, inv) }) {
		notFound(c, number)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "export failed", Details: err.Error()})
		return
	}

	filename := "invoice-" + strconv.Itoa(number) + "." + format
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// Helper functions

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return nil, false
	}

	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return nil, false
	}
	return body, true
}

func invoiceNumber(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice number", Details: c.Param("number")})
		return 0, false
	}
	return number, true
}

func notFound(c *gin.Context, number int) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "invoice not found", Details: strconv.Itoa(number)})
}

func writeModelError(c *gin.Context, err error) {
	var verr *model.ValidationError
	switch {
	case errors.Is(err, model.ErrInvalidQuantity):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid quantity", Details: err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
