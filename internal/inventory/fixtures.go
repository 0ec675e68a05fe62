package inventory

import "flydreamair/internal/domain"

// defaultSchedule is the fixture flight table. Only two route/date
// combinations are bookable; everything else matches empty.
func defaultSchedule() []ScheduleEntry {
	return []ScheduleEntry{
		{
			Date: "2025-11-19",
			Flight: domain.Flight{
				ID:           "syd-dad-1",
				Airline:      "Vietnam Airlines",
				FlightNumber: "VN 773",
				Origin:       "Sydney",
				Destination:  "Danang",
				DepartTime:   "10:30 AM",
				ArriveTime:   "4:15 PM",
				Duration:     "8h 45m",
				Price:        850,
				Stops:        1,
				Aircraft:     "Airbus A350",
				Amenities:    []string{"WiFi", "Entertainment", "Meals", "Lounge Access"},
			},
		},
		{
			Date: "2025-11-19",
			Flight: domain.Flight{
				ID:           "syd-dad-2",
				Airline:      "Jetstar Airways",
				FlightNumber: "JQ 507",
				Origin:       "Sydney",
				Destination:  "Danang",
				DepartTime:   "2:20 PM",
				ArriveTime:   "8:05 PM",
				Duration:     "8h 45m",
				Price:        650,
				Stops:        1,
				Aircraft:     "Airbus A321",
				Amenities:    []string{"WiFi", "Meals"},
			},
		},
		{
			Date: "2026-02-28",
			Flight: domain.Flight{
				ID:           "dad-syd-1",
				Airline:      "Vietnam Airlines",
				FlightNumber: "VN 774",
				Origin:       "Danang",
				Destination:  "Sydney",
				DepartTime:   "11:45 PM",
				ArriveTime:   "12:30 PM+1",
				Duration:     "9h 45m",
				Price:        920,
				Stops:        1,
				Aircraft:     "Airbus A350",
				Amenities:    []string{"WiFi", "Entertainment", "Meals", "Lounge Access"},
			},
		},
		{
			Date: "2026-02-28",
			Flight: domain.Flight{
				ID:           "dad-syd-2",
				Airline:      "Jetstar Airways",
				FlightNumber: "JQ 508",
				Origin:       "Danang",
				Destination:  "Sydney",
				DepartTime:   "6:30 PM",
				ArriveTime:   "7:15 AM+1",
				Duration:     "9h 45m",
				Price:        720,
				Stops:        1,
				Aircraft:     "Airbus A321",
				Amenities:    []string{"WiFi", "Meals"},
			},
		},
	}
}
