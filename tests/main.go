// File: tests/main.go
//
// Seeder: populates a local database with one demo tenant, a weekly
// schedule, a day of bookings and a few waitlist entries. Run manually
// against a development instance.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"bookwise/config"
	"bookwise/database"
	"bookwise/models"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, name := range []string{"providers", "work_hours", "bookings", "waitlist"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("failed to clear %s: %v", name, err)
		}
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)

	offeringCut := models.Offering{
		ID: uuid.New().String(), Name: "Haircut",
		DurationMinutes: 30, BufferMinutes: 15, Price: 35, Currency: "EUR",
		Mode: models.OfferingFixed, Active: true,
	}
	offeringColor := models.Offering{
		ID: uuid.New().String(), Name: "Coloring",
		DurationMinutes: 90, BufferMinutes: 15, Price: 120, Currency: "EUR",
		Mode: models.OfferingFixed, Active: true,
	}
	staffAna := models.Staff{
		ID: uuid.New().String(), Name: "Ana", Role: "owner",
		OfferingIDs: []string{offeringCut.ID, offeringColor.ID}, Active: true,
	}
	staffLeo := models.Staff{
		ID: uuid.New().String(), Name: "Leo", Role: "member",
		OfferingIDs: []string{offeringCut.ID}, Active: true,
	}

	now := time.Now()
	prov := models.Provider{
		ID:                uuid.New().String(),
		Name:              "Demo Salon",
		Email:             "demo@example.com",
		Timezone:          "Europe/Berlin",
		Security:          models.Security{PasswordHash: string(hash)},
		Offerings:         []models.Offering{offeringCut, offeringColor},
		Staff:             []models.Staff{staffAna, staffLeo},
		WorkHoursEnforced: true,
		Status:            "active",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := db.Collection("providers").InsertOne(ctx, prov); err != nil {
		log.Fatalf("failed to insert provider: %v", err)
	}

	// Tuesday through Saturday, 09:00-17:00 for both staff members.
	var rules []interface{}
	for _, staff := range prov.Staff {
		for wd := time.Tuesday; wd <= time.Saturday; wd++ {
			rules = append(rules, models.WorkHoursRule{
				ID:         uuid.New().String(),
				ProviderID: prov.ID,
				StaffID:    staff.ID,
				Weekday:    wd,
				Open:       9 * 60,
				Close:      17 * 60,
			})
		}
	}
	if _, err := db.Collection("work_hours").InsertMany(ctx, rules); err != nil {
		log.Fatalf("failed to insert work hours: %v", err)
	}

	date := now.AddDate(0, 0, 1).Format("2006-01-02")
	booking := models.Booking{
		ID:           uuid.New().String(),
		ProviderID:   prov.ID,
		StaffID:      staffAna.ID,
		OfferingID:   offeringCut.ID,
		CustomerName: "Walk-in",
		Date:         date,
		Start:        10 * 60,
		End:          10*60 + 30,
		Status:       models.BookingConfirmed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := db.Collection("bookings").InsertOne(ctx, booking); err != nil {
		log.Fatalf("failed to insert booking: %v", err)
	}

	morning := 9 * 60
	noon := 12 * 60
	entries := []interface{}{
		models.WaitlistEntry{
			ID: uuid.New().String(), ProviderID: prov.ID,
			CustomerName: "Mia", OfferingID: offeringCut.ID,
			PreferredDate: date, WindowStart: &morning, WindowEnd: &noon,
			Priority: 1, Status: models.WaitlistWaiting,
			CreatedAt: now, UpdatedAt: now,
		},
		models.WaitlistEntry{
			ID: uuid.New().String(), ProviderID: prov.ID,
			CustomerName: "Jon", OfferingID: offeringColor.ID, StaffID: staffAna.ID,
			PreferredDate: date,
			Priority:      0, Status: models.WaitlistWaiting,
			CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour),
		},
	}
	if _, err := db.Collection("waitlist").InsertMany(ctx, entries); err != nil {
		log.Fatalf("failed to insert waitlist entries: %v", err)
	}

	fmt.Printf("seeded provider %s with %d staff, 1 booking and %d waitlist entries on %s\n",
		prov.ID, len(prov.Staff), len(entries), date)
}
