package billing

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/reports"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

var (
	weekdayLabels = [...]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
	monthLabels   = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}
)

const topServices = 5

type Totals struct {
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

type Point struct {
	Label string  `json:"name"`
	Value float64 `json:"value"`
}

type Summary struct {
	Today Totals `json:"today"`
	Week  Totals `json:"week"`
	Month Totals `json:"month"`

	Last7Days   []Point `json:"last7Days"`
	Last4Weeks  []Point `json:"last4Weeks"`
	Last6Months []Point `json:"last6Months"`
	ByService   []Point `json:"byService"`
}

// ======================================================
// CALCULO
// ======================================================

// Summarize agrega receita de agendamentos confirmados ao preço atual do serviço.
// Semana começa no domingo; períodos vão até o fim do dia de hoje.
func Summarize(rows []reports.RevenueRow, now time.Time, loc *time.Location) Summary {
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)

	s := Summary{
		Last7Days:   make([]Point, 7),
		Last4Weeks:  make([]Point, 4),
		Last6Months: make([]Point, 6),
	}

	for i := 0; i < 7; i++ {
		d := today.AddDate(0, 0, i-6)
		s.Last7Days[i].Label = weekdayLabels[d.Weekday()]
	}
	for i := 0; i < 4; i++ {
		back := 3 - i
		if back == 0 {
			s.Last4Weeks[i].Label = "Semana atual"
		} else {
			s.Last4Weeks[i].Label = fmt.Sprintf("Semana -%d", back)
		}
	}
	for i := 0; i < 6; i++ {
		m := monthStart.AddDate(0, i-5, 0)
		s.Last6Months[i].Label = monthLabels[m.Month()-1]
	}

	byService := map[string]float64{}

	for _, r := range rows {
		at := r.Date.In(loc)
		if !at.Before(tomorrow) {
			continue
		}
		day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, loc)

		if day.Equal(today) {
			s.Today.add(r.Price)
		}
		if !day.Before(weekStart) {
			s.Week.add(r.Price)
		}
		if !day.Before(monthStart) {
			s.Month.add(r.Price)
		}

		if diff := daysBetween(day, today); diff < 7 {
			s.Last7Days[6-diff].Value += r.Price
		}
		if diff := daysBetween(day, weekStart.AddDate(0, 0, 6)) / 7; diff < 4 {
			s.Last4Weeks[3-diff].Value += r.Price
		}
		if diff := monthsBetween(day, today); diff < 6 {
			s.Last6Months[5-diff].Value += r.Price
		}

		byService[r.ServiceName] += r.Price
	}

	s.Today.round()
	s.Week.round()
	s.Month.round()
	roundPoints(s.Last7Days)
	roundPoints(s.Last4Weeks)
	roundPoints(s.Last6Months)

	s.ByService = make([]Point, 0, len(byService))
	for name, v := range byService {
		s.ByService = append(s.ByService, Point{Label: name, Value: round2(v)})
	}
	sort.Slice(s.ByService, func(i, j int) bool {
		if s.ByService[i].Value != s.ByService[j].Value {
			return s.ByService[i].Value > s.ByService[j].Value
		}
		return s.ByService[i].Label < s.ByService[j].Label
	})
	if len(s.ByService) > topServices {
		s.ByService = s.ByService[:topServices]
	}

	return s
}

func (t *Totals) add(price float64) {
	t.Revenue += price
	t.Count++
}

func (t *Totals) round() {
	t.Revenue = round2(t.Revenue)
}

func roundPoints(points []Point) {
	for i := range points {
		points[i].Value = round2(points[i].Value)
	}
}

// daysBetween conta dias civis (a <= b), imune à mudança de horário de verão.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ======================================================
// USE CASE
// ======================================================

type GetSummary struct {
	reports reports.Repository
	clock   timezone.Clock
}

func NewGetSummary(repo reports.Repository, clock timezone.Clock) *GetSummary {
	return &GetSummary{reports: repo, clock: clock}
}

func (uc *GetSummary) Execute(ctx context.Context) (Summary, error) {
	now := uc.clock()

	// ranking por serviço considera todo o histórico
	rows, err := uc.reports.ConfirmedRevenue(ctx, time.Time{})
	if err != nil {
		return Summary{}, err
	}

	return Summarize(rows, now, now.Location()), nil
}
