package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Toy{},
		&StockEntry{},
		&School{},
		&VendorOrder{},
		&VendorOrderLine{},
		&VendorOrderStatus{},
		&SchoolOrder{},
		&SchoolOrderLine{},
		&OtherProduct{},
	)
}
