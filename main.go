package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"inventory-api/models"
)

func main() {
	cfg := LoadConfig()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := db.AutoMigrate(&models.Supplier{}, &models.Product{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	mailer := &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.MailUsername,
		Password: cfg.MailPassword,
		From:     cfg.MailFrom,
	}

	r := SetupRouter(db, cfg, mailer)
	r.Run(":" + cfg.HTTPPort)
}

// Create payloads require every field; pointer fields with the required
// binding accept zero values but reject omitted keys.
type createSupplierRequest struct {
	Name    *string `json:"name" binding:"required"`
	Company *string `json:"company" binding:"required"`
	Email   *string `json:"email" binding:"required"`
	Phone   *string `json:"phone" binding:"required"`
}

// Update payloads are patches: a nil field was absent and leaves the stored
// value untouched.
type updateSupplierRequest struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

type createProductRequest struct {
	Name            *string  `json:"name" binding:"required"`
	QuantityInStock *int     `json:"quantity_in_stock" binding:"required"`
	QuantitySold    *int     `json:"quantity_sold" binding:"required"`
	UnitPrice       *float64 `json:"unit_price" binding:"required"`
	Revenue         *float64 `json:"revenue" binding:"required"`
}

type updateProductRequest struct {
	Name            *string  `json:"name"`
	QuantityInStock *int     `json:"quantity_in_stock"`
	QuantitySold    *int     `json:"quantity_sold"`
	UnitPrice       *float64 `json:"unit_price"`
	Revenue         *float64 `json:"revenue"`
}

type emailRequest struct {
	Subject *string `json:"subject" binding:"required"`
	Message *string `json:"message" binding:"required"`
}

func SetupRouter(db *gorm.DB, cfg *Config, mailer Mailer) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Liveness / info
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data": "supplier and product inventory API"})
	})

	// Create supplier
	r.POST("/supplier", func(c *gin.Context) {
		var req createSupplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		supplier := models.Supplier{
			Name:    *req.Name,
			Company: *req.Company,
			Email:   *req.Email,
			Phone:   *req.Phone,
		}
		if err := db.Create(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data": supplier})
	})

	// List suppliers
	r.GET("/supplier", func(c *gin.Context) {
		var suppliers []models.Supplier
		if err := db.Find(&suppliers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data": suppliers})
	})

	// Supplier of a product. The path id is a PRODUCT id; the response is the
	// supplier that product references.
	r.GET("/supplier/:id", func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		var supplier models.Supplier
		if err := db.First(&supplier, product.SupplierID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data": supplier})
	})

	// Update supplier
	r.PUT("/supplier/:supplier_id", func(c *gin.Context) {
		var req updateSupplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var supplier models.Supplier
		if err := db.First(&supplier, c.Param("supplier_id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		if req.Name != nil {
			supplier.Name = *req.Name
		}
		if req.Company != nil {
			supplier.Company = *req.Company
		}
		if req.Email != nil {
			supplier.Email = *req.Email
		}
		if req.Phone != nil {
			supplier.Phone = *req.Phone
		}
		if err := db.Save(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data": supplier})
	})

	// Delete supplier; products under it go with it. The cascade is done
	// here because soft deletes are UPDATEs and never trip the FK constraint.
	r.DELETE("/supplier/:supplier_id", func(c *gin.Context) {
		var supplier models.Supplier
		if err := db.First(&supplier, c.Param("supplier_id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		if err := db.Where("supplier_id = ?", supplier.ID).Delete(&models.Product{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := db.Delete(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Create product under a supplier
	r.POST("/product/:supplier_id", func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var supplier models.Supplier
		if err := db.First(&supplier, c.Param("supplier_id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		// The revenue field is a prior baseline; this creation's sale value
		// is added on top of it.
		product := models.Product{
			Name:            *req.Name,
			QuantityInStock: *req.QuantityInStock,
			QuantitySold:    *req.QuantitySold,
			UnitPrice:       *req.UnitPrice,
			Revenue:         *req.Revenue + float64(*req.QuantitySold)*(*req.UnitPrice),
			SupplierID:      supplier.ID,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data": product})
	})

	// List products
	r.GET("/product", func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data": products})
	})

	// Fetch one product
	r.GET("/product/:id", func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data": product})
	})

	// Update product. Name, stock and unit price are absolute overwrites;
	// quantity_sold and revenue accumulate onto the stored row.
	r.PUT("/product/:id", func(c *gin.Context) {
		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.QuantityInStock != nil {
			product.QuantityInStock = *req.QuantityInStock
		}
		price := product.UnitPrice
		if req.UnitPrice != nil {
			price = *req.UnitPrice
			product.UnitPrice = *req.UnitPrice
		}
		if req.QuantitySold != nil {
			product.Revenue += float64(*req.QuantitySold) * price
			product.QuantitySold += *req.QuantitySold
		}
		if req.Revenue != nil {
			product.Revenue += *req.Revenue
		}
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data": product})
	})

	// Delete product; its supplier is untouched
	r.DELETE("/product/:id", func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Email a supplier. Fire and forget: no retry, no delivery confirmation.
	r.POST("/email/:supplier_id", func(c *gin.Context) {
		var req emailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var supplier models.Supplier
		if err := db.First(&supplier, c.Param("supplier_id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		if err := mailer.Send(supplier.Email, *req.Subject, supplierEmailBody(*req.Message)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
