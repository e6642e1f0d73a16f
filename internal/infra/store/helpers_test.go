//go:build unit || integration

package store_test

import (
	"log/slog"
	"os"
	"time"

	"booking-api/internal/domain/request"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func sampleRecords() []request.Record {
	created := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	return []request.Record{
		{
			ID:           "b2",
			CreatedAt:    created.Add(time.Hour),
			Status:       request.StatusPending,
			FullName:     "Hanako Sato",
			Email:        "hanako@example.com",
			Phone:        "080-0000-0000",
			ServiceType:  "deep",
			PropertyType: "commercial",
			Address:      "4-5-6 Minato, Tokyo",
			Frequency:    "one-time",
			Date:         "2025-06-02",
			Time:         "14:00",
			DateTime:     "2025-06-02 14:00",
			EstimateUSD:  240,
		},
		{
			ID:           "b1",
			CreatedAt:    created,
			Status:       request.StatusConfirmed,
			FullName:     "Taro Yamada",
			Email:        "taro@example.com",
			Phone:        "090-0000-0000",
			ServiceType:  "standard",
			PropertyType: "residential",
			Address:      "1-2-3 Chiyoda, Tokyo",
			Bedrooms:     3,
			Bathrooms:    2,
			Frequency:    "weekly",
			Date:         "2025-06-01",
			Time:         "10:00",
			DateTime:     "2025-06-01 10:00",
			Notes:        "Key under the mat",
			EstimateUSD:  210,
		},
	}
}
