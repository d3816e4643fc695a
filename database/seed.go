package database

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"beetguru/entities"
)

// SeedDemo loads the demo persona and reference data the web client shipped
// with. It is a no-op when users already exist.
func SeedDemo(db *gorm.DB) error {
	var n int64
	if err := db.Model(&entities.User{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	farmer := entities.User{
		Name: "John Wilson", Email: "john@beetguru.nz",
		PasswordHash: string(hash), HasPassword: true,
		Role: "owner", AccountType: entities.AccountTypeFarmer,
	}
	retailer := entities.User{
		Name: "Sarah Mitchell", Email: "sarah@ruralsupplies.nz",
		PasswordHash: string(hash), HasPassword: true,
		Role: "rep", AccountType: entities.AccountTypeRetailer,
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&farmer).Error; err != nil {
			return err
		}
		if err := tx.Create(&retailer).Error; err != nil {
			return err
		}
		rel := entities.CustomerRelationship{
			RetailerID: retailer.UserID, CustomerID: farmer.UserID,
			RelationshipStart: time.Now().AddDate(-1, 0, 0), Status: "active",
		}
		if err := tx.Create(&rel).Error; err != nil {
			return err
		}

		types := []entities.CropType{{Name: "Fodder Beet"}, {Name: "Sugar Beet"}, {Name: "Mangels"}}
		if err := tx.Create(&types).Error; err != nil {
			return err
		}
		cultivars := []entities.Cultivar{
			{CropTypeID: types[0].CropTypeID, Name: "Brigadier", DryMatter: "12-15%", Yield: "22-28 t DM/ha", GrowingTime: "24-28 weeks", IsPGG: true,
				Description: "High yielding, low dry matter bulb suited to in-paddock grazing."},
			{CropTypeID: types[0].CropTypeID, Name: "Kyros", DryMatter: "19-21%", Yield: "20-25 t DM/ha", GrowingTime: "26-30 weeks", IsPGG: true,
				Description: "High dry matter, best lifted before feeding."},
			{CropTypeID: types[0].CropTypeID, Name: "Blizzard", DryMatter: "14-17%", Yield: "18-24 t DM/ha", GrowingTime: "24-28 weeks"},
			{CropTypeID: types[1].CropTypeID, Name: "Rivage", DryMatter: "18-22%", Yield: "16-20 t DM/ha", GrowingTime: "28-32 weeks"},
		}
		if err := tx.Create(&cultivars).Error; err != nil {
			return err
		}

		paddocks := []entities.Location{
			{UserID: farmer.UserID, Name: "North Paddock", AreaHa: 3.5, Status: entities.LocationStatusNotStarted},
			{UserID: farmer.UserID, Name: "River Block", AreaHa: 5.2, Status: entities.LocationStatusNotStarted},
		}
		return tx.Create(&paddocks).Error
	})
}
