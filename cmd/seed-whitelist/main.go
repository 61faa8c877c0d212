package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/dwlab/visitor-pass-service/internal/models"
	"github.com/dwlab/visitor-pass-service/internal/repo"
	"github.com/dwlab/visitor-pass-service/internal/util"
	"github.com/google/uuid"
)

func main() {
	var (
		file   string
		count  int
		status string
		days   int
	)
	flag.StringVar(&file, "file", "whitelist.json", "whitelist file path")
	flag.IntVar(&count, "count", 3, "number of demo entries")
	flag.StringVar(&status, "status", "VIP", "pass_status for the demo entries")
	flag.IntVar(&days, "days", 7, "days until expiry")
	flag.Parse()

	store := repo.NewStore(file)
	now := time.Now().UTC()
	expiry := now.AddDate(0, 0, days).Format("2006-01-02")

	for i := 0; i < count; i++ {
		rec := models.PassRecord{
			ID:         uuid.NewString(),
			PassID:     util.NewPassID(now, i+1),
			Name:       fmt.Sprintf("Demo Visitor %d", i+1),
			PassStatus: status,
			CreatedAt:  now,
			IssueTime:  now.Format("2006-01-02 15:04:05"),
			ExpiryDate: expiry,
			Status:     models.StatusActive,
		}
		store.Insert(rec)
		fmt.Println("Seeded pass:", rec.PassID, rec.Name, "expires", rec.ExpiryDate)
	}
}
