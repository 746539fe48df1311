package main

import (
	"fmt"
	"log"

	"gymdesk/internal/config"
	"gymdesk/internal/database"
	"gymdesk/internal/domain"
	"gymdesk/internal/pkg/format"
	"gymdesk/internal/pkg/validator"

	"golang.org/x/crypto/bcrypt"
)

// mustValid stops the seed if a demo record drifts out of shape.
func mustValid(label string, v interface{}) {
	if errs := validator.Validate(v); errs != nil {
		log.Fatalf("bad seed %s: %v", label, errs)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM users")

	// ================== STAFF ==================
	log.Println("Creating staff account...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		PasswordHash: string(adminHash),
	}
	db.Create(&admin)
	log.Println("Staff account created: admin / admin123")

	// ================== CLIENTS ==================
	log.Println("Creating clients...")
	today := format.Today()
	clients := []domain.Client{
		{FirstName: "Laura", LastName: "Gómez", DNI: "12345678Z", Email: "laura@mail.com", Phone: "612345678", JoinedAt: today, Status: domain.ClientActive},
		{FirstName: "Carlos", LastName: "Pérez", DNI: "87654321X", Email: "carlos@mail.com", Phone: "698765432", JoinedAt: today, Status: domain.ClientActive},
		{FirstName: "Marta", LastName: "Ruiz", DNI: "11111111H", Email: "marta@mail.com", Phone: "722334455", JoinedAt: today, Status: domain.ClientInactive},
	}
	for i := range clients {
		mustValid("client", clients[i])
		db.Create(&clients[i])
		log.Printf("Client created: %s", clients[i].FullName())
	}

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")
	equipment := []domain.Equipment{
		{Name: "Treadmill 1", Category: "cardio", Status: domain.EquipmentAvailable},
		{Name: "Treadmill 2", Category: "cardio", Status: domain.EquipmentAvailable},
		{Name: "Rowing machine", Category: "cardio", Status: domain.EquipmentAvailable},
		{Name: "Squat rack", Category: "strength", Status: domain.EquipmentMaintenance, Description: "Cable frayed, waiting for part"},
	}
	for i := range equipment {
		mustValid("equipment", equipment[i])
		db.Create(&equipment[i])
	}

	// ================== BOOKINGS ==================
	// Monday slots on the first two treadmills; none of them overlap.
	log.Println("Creating bookings...")
	bookings := []domain.Booking{
		{ClientID: clients[0].ID, EquipmentID: equipment[0].ID, Date: "2026-01-05", StartTime: "09:00", EndTime: "09:30", Status: domain.BookingConfirmed},
		{ClientID: clients[1].ID, EquipmentID: equipment[0].ID, Date: "2026-01-05", StartTime: "09:30", EndTime: "10:00", Status: domain.BookingPending},
		{ClientID: clients[1].ID, EquipmentID: equipment[1].ID, Date: "2026-01-05", StartTime: "09:00", EndTime: "09:30", Status: domain.BookingConfirmed},
		{ClientID: clients[0].ID, EquipmentID: equipment[2].ID, Date: "2026-01-06", StartTime: "18:00", EndTime: "18:30", Status: domain.BookingCancelled},
	}
	for i := range bookings {
		mustValid("booking", bookings[i])
		db.Create(&bookings[i])
	}

	// ================== PAYMENTS ==================
	log.Println("Creating payments...")
	paidAt := "2026-01-03"
	payments := []domain.Payment{
		{ClientID: clients[0].ID, Month: "2026-01", GeneratedAt: today, Paid: true, PaidAt: &paidAt, Fee: cfg.MonthlyFee, Method: "card", Concept: "January dues"},
		{ClientID: clients[1].ID, Month: "2026-01", GeneratedAt: today, Paid: false, Fee: cfg.MonthlyFee},
	}
	for i := range payments {
		mustValid("payment", payments[i])
		db.Create(&payments[i])
	}

	fmt.Println("Seed complete.")
}
