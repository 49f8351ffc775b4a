package client

import (
	"math"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ApplyVisit soma o valor gasto e marca a última visita.
func ApplyVisit(c *models.Client, price float64, at time.Time) {
	c.TotalSpent = round2(c.TotalSpent + price)
	visit := at
	if c.LastVisit == nil || visit.After(*c.LastVisit) {
		c.LastVisit = &visit
	}
}

// RevertVisit desfaz ApplyVisit; o total nunca fica negativo.
func RevertVisit(c *models.Client, price float64) {
	c.TotalSpent = round2(math.Max(0, c.TotalSpent-price))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
