package services

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/models"
)

const (
	defaultBaseCovers = 80.0
	hourlyLaborRate   = 18.0
)

// dayMultipliers scales baseline demand by weekday, Monday first.
var dayMultipliers = [7]float64{0.7, 0.75, 0.8, 0.85, 1.3, 1.4, 1.0}

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// scheduleHours are the 12 service hours, 11:00 through 22:00.
var scheduleHours = []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22}

// hourlyDemand weights each service hour; lunch and dinner peaks.
var hourlyDemand = map[int]float64{
	11: 0.3, 12: 0.8, 13: 1.0, 14: 0.6,
	15: 0.3, 16: 0.4, 17: 0.7, 18: 1.2,
	19: 1.4, 20: 1.3, 21: 1.0, 22: 0.5,
}

// staffRatios maps each role to covers served per staff member. Fixed for
// the whole process.
var staffRatios = map[string]int{
	"SERVER":    15,
	"KITCHEN":   25,
	"BARTENDER": 30,
	"HOST":      60,
	"BUSSER":    30,
}

var peakHours = []string{"12:00-14:00", "19:00-21:00"}

// StaffingService turns historical demand into an hourly staffing plan for
// a target date.
type StaffingService struct{}

// NewStaffingService creates a new staffing optimizer.
func NewStaffingService() *StaffingService {
	return &StaffingService{}
}

// Optimize builds the recommended schedule for the target date. The staff
// roster is accepted but does not enter the computation. An unparsable
// target date is a validation fault.
func (s *StaffingService) Optimize(req models.StaffOptimizationRequest) (*models.StaffOptimizationResponse, error) {
	targetDate, err := time.Parse(dateLayout, req.TargetDate)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid target date %q, expected YYYY-MM-DD", req.TargetDate))
	}
	dayIndex := mondayIndexed(targetDate.Weekday())

	log.Printf("Staffing plan for %s: %d historical orders, %d roster entries",
		req.TargetDate, len(req.HistoricalOrders), len(req.StaffData))

	baseCovers := defaultBaseCovers
	covers := make([]float64, 0, len(req.HistoricalOrders))
	for _, rec := range req.HistoricalOrders {
		if rec.Covers != nil {
			covers = append(covers, *rec.Covers)
		}
	}
	if len(covers) > 0 {
		baseCovers = mean(covers)
	}

	multiplier := dayMultipliers[dayIndex]
	expectedCovers := int(baseCovers * multiplier)

	var weightSum float64
	for _, hour := range scheduleHours {
		weightSum += hourlyDemand[hour]
	}

	schedule := make([]models.HourlyStaffing, 0, len(scheduleHours))
	totalHours := make(map[string]int, len(staffRatios))
	for _, hour := range scheduleHours {
		weight := hourlyDemand[hour]
		// The x2 allocation scale-up is part of the planning model.
		hourCovers := int(float64(expectedCovers) * weight / weightSum * 2)

		needed := make(map[string]int, len(staffRatios))
		for role, ratio := range staffRatios {
			count := int(math.Ceil(float64(hourCovers) / float64(ratio)))
			if count < 1 {
				count = 1
			}
			needed[role] = count
			totalHours[role] += count
		}

		schedule = append(schedule, models.HourlyStaffing{
			Hour:           hour,
			Time:           fmt.Sprintf("%02d:00", hour),
			ExpectedCovers: hourCovers,
			DemandLevel:    demandLevel(weight),
			StaffNeeded:    needed,
		})
	}

	var laborHours int
	for _, hours := range totalHours {
		laborHours += hours
	}

	return &models.StaffOptimizationResponse{
		RecommendedSchedule: schedule,
		ExpectedDemand: models.ExpectedDemand{
			Date:                req.TargetDate,
			DayOfWeek:           dayNames[dayIndex],
			TotalExpectedCovers: expectedCovers,
			PeakHours:           peakHours,
			DemandMultiplier:    multiplier,
		},
		CoverageAnalysis: models.CoverageAnalysis{
			TotalStaffHoursNeeded: totalHours,
			EstimatedLaborCost:    float64(laborHours) * hourlyLaborRate,
			CoversPerLaborHour:    round(safeRatio(float64(expectedCovers), float64(laborHours)), 2),
		},
	}, nil
}

// demandLevel labels an hour's demand weight.
func demandLevel(weight float64) string {
	switch {
	case weight >= 1.0:
		return "high"
	case weight >= 0.6:
		return "medium"
	default:
		return "low"
	}
}
