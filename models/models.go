package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	Name     string    `json:"name"`
	Company  string    `json:"company"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Products []Product `json:"-" gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
}

type Product struct {
	gorm.Model
	Name            string  `json:"name"`
	QuantityInStock int     `json:"quantity_in_stock"`
	QuantitySold    int     `json:"quantity_sold"`
	UnitPrice       float64 `json:"unit_price"`
	// Revenue accumulates over the product's sale history; it is never
	// overwritten with an absolute value.
	Revenue    float64 `json:"revenue"`
	SupplierID uint    `json:"supplied_by"`
}
