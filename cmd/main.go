package main

import (
	"net/http"
	"os"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	"catalog_service/internal/store"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HTML content for the test page
const htmlTestPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Catalog Service API Test Page</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
        .method-post { color: #49cc90; }
        .method-get { color: #61affe; }
        .method-put { color: #fca130; }
        .method-delete { color: #f93e3e; }
    </style>
</head>
<body>
    <h1>Catalog Service API Endpoints</h1>

    <h2>Categories API</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/categories</code> - Create a category. JSON body: <code>{"name": "string"}</code> (name length 3-60)</li>
        <li><span class="method method-get">GET</span> <code>/categories</code> - List all categories.</li>
        <li><span class="method method-get">GET</span> <code>/categories/{id}</code> - Retrieve a category by ID.</li>
        <li><span class="method method-put">PUT</span> <code>/categories/{id}</code> - Replace a category. Body ID must match the path ID. Returns 204.</li>
        <li><span class="method method-delete">DELETE</span> <code>/categories/{id}</code> - Delete a category; returns the removed record.</li>
    </ul>

    <h2>Products API</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/products</code> - Create a product. JSON body: <code>{"name": "string", "quantity": int, "price": decimal, "category_id": int}</code></li>
        <li><span class="method method-get">GET</span> <code>/products</code> - List products with their resolved categories.</li>
        <li><span class="method method-get">GET</span> <code>/products/{id}</code> - Retrieve a product by ID.</li>
        <li><span class="method method-get">GET</span> <code>/products/categories/{id}</code> - List the products of a category.</li>
        <li><span class="method method-put">PUT</span> <code>/products/{id}</code> - Replace a product. Body ID must match the path ID. Returns 204.</li>
        <li><span class="method method-delete">DELETE</span> <code>/products/{id}</code> - Delete a product; returns the removed record.</li>
    </ul>

</body>
</html>
`

func serveTestPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlTestPageContent))
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown log level '%s', using info", cfg.LogLevel)
		logger.SetLevel(logrus.InfoLevel)
	}

	logger.Info("Starting Catalog Service...")

	// --- Dependency Injection ---
	// The stores are created here and torn down with the process; all state
	// is per-instance, nothing is global or persisted.
	categoryRepo := store.NewMemoryCategoryRepository(logger)
	productRepo := store.NewMemoryProductRepository(logger)
	logger.Info("In-memory stores initialized.")

	resolver := usecase.NewCategoryResolver(categoryRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, resolver, logger)
	logger.Info("Use cases initialized.")

	categoryHandler := delivery.NewCategoryHandler(categoryUseCase, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
		}).Info("Request received")
		c.Next()
		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		}).Info("Request completed")
	})

	// Route Registration
	router.GET("/", serveTestPage)
	categoryHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	logger.Info("API routes registered.")

	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
