package config

import (
	"log"
	"time"

	"food-court-api/models"

	"golang.org/x/crypto/bcrypt"
)

// Seed loads the demo food-court data. Idempotent: rows are matched by
// their natural keys, so running it twice changes nothing.
func Seed() error {
	db := DB

	kenyan := models.Cuisine{Name: "Kenyan"}
	ethiopian := models.Cuisine{Name: "Ethiopian"}
	nigerian := models.Cuisine{Name: "Nigerian"}
	for _, c := range []*models.Cuisine{&kenyan, &ethiopian, &nigerian} {
		if err := db.FirstOrCreate(c, models.Cuisine{Name: c.Name}).Error; err != nil {
			return err
		}
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte(GetEnv("ADMIN_PASSWORD", "changeme123")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "admin",
		Email:        GetEnv("ADMIN_EMAIL", "admin@foodcourt.local"),
		PasswordHash: string(adminHash),
		Role:         models.RoleAdmin,
	}
	if err := db.FirstOrCreate(&admin, models.User{Email: admin.Email}).Error; err != nil {
		return err
	}

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("ownerpass"), bcrypt.DefaultCost)
	owner := models.User{
		Name:         "mary_owner",
		Email:        "mary@foodcourt.local",
		PasswordHash: string(ownerHash),
		Phone:        "254711000000",
		Role:         models.RoleOwner,
	}
	if err := db.FirstOrCreate(&owner, models.User{Email: owner.Email}).Error; err != nil {
		return err
	}

	billyHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	billy := models.User{
		Name:         "billy",
		Email:        "billy@example.com",
		PasswordHash: string(billyHash),
		Phone:        "254712345678",
		Role:         models.RoleCustomer,
	}
	if err := db.FirstOrCreate(&billy, models.User{Email: billy.Email}).Error; err != nil {
		return err
	}

	outlet1 := models.Outlet{Name: "Mama Oliech", Contact: "0711000001", CuisineID: kenyan.ID, OwnerID: owner.ID}
	outlet2 := models.Outlet{Name: "Jollof Haven", Contact: "0711000002", CuisineID: nigerian.ID, OwnerID: owner.ID}
	outlet3 := models.Outlet{Name: "Addis Taste", Contact: "0711000003", CuisineID: ethiopian.ID, OwnerID: owner.ID}
	for _, o := range []*models.Outlet{&outlet1, &outlet2, &outlet3} {
		if err := db.FirstOrCreate(o, models.Outlet{Name: o.Name}).Error; err != nil {
			return err
		}
	}

	items := []models.MenuItem{
		{Name: "Ugali Nyama", Description: "Staple Kenyan meal", Price: 350, Category: "Main", OutletID: outlet1.ID},
		{Name: "Sukuma Wiki", Description: "Greens", Price: 100, Category: "Side", OutletID: outlet1.ID},
		{Name: "Jollof Rice", Description: "Spicy rice", Price: 500, Category: "Main", OutletID: outlet2.ID},
		{Name: "Suya", Description: "Spicy grilled meat", Price: 450, Category: "Snack", OutletID: outlet2.ID},
		{Name: "Injera", Description: "Fermented flatbread", Price: 300, Category: "Main", OutletID: outlet3.ID},
		{Name: "Doro Wat", Description: "Spicy chicken stew", Price: 600, Category: "Main", OutletID: outlet3.ID},
	}
	for i := range items {
		if err := db.FirstOrCreate(&items[i], models.MenuItem{Name: items[i].Name, OutletID: items[i].OutletID}).Error; err != nil {
			return err
		}
	}

	tables := []models.Table{
		{TableNumber: 1, Status: models.TableAvailable},
		{TableNumber: 2, Status: models.TableAvailable},
		{TableNumber: 3, Status: models.TableAvailable},
	}
	for i := range tables {
		if err := db.FirstOrCreate(&tables[i], models.Table{TableNumber: tables[i].TableNumber}).Error; err != nil {
			return err
		}
	}

	// One demo order + reservation for billy, only on a fresh database
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	if orderCount == 0 {
		order := models.Order{Status: "pending", TotalPrice: 850, UserID: billy.ID}
		if err := db.Create(&order).Error; err != nil {
			return err
		}
		lines := []models.OrderItem{
			{OrderID: order.ID, MenuItemID: items[0].ID, Quantity: 2, SubTotal: 700},
			{OrderID: order.ID, MenuItemID: items[1].ID, Quantity: 1, SubTotal: 150},
		}
		if err := db.Create(&lines).Error; err != nil {
			return err
		}

		reservation := models.Reservation{
			UserID:      billy.ID,
			OrderID:     &order.ID,
			TableID:     tables[0].ID,
			BookingTime: time.Now().Add(20 * time.Minute),
			NoOfPeople:  2,
			Status:      "confirmed",
		}
		if err := db.Create(&reservation).Error; err != nil {
			return err
		}
		if err := db.Model(&tables[0]).Update("status", models.TableReserved).Error; err != nil {
			return err
		}
	}

	log.Println("Seed data loaded")
	return nil
}
