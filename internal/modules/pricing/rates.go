package pricing

import (
	"os"
	"strconv"
	"sync"
	"time"
)

const (
	rateSource            = "indian-market-rates"
	defaultLaborCostINR   = 350.0
	defaultMachineCostINR = 500.0
	defaultRateTTL        = 24 * time.Hour
)

// Typical Indian market rates, INR per kg.
var marketRates = []struct {
	Material     string
	CostPerKg    float64
	MinimumOrder int
}{
	{"Steel", 55.00, 25},
	{"Aluminum", 225.00, 20},
	{"Stainless Steel", 100.00, 30},
	{"Cast Iron", 45.00, 10},
	{"Brass", 400.00, 15},
}

type RateItem struct {
	ID                 int     `json:"id"`
	Material           string  `json:"material"`
	CostPerKg          float64 `json:"costPerKg"`
	LaborCostPerHour   float64 `json:"laborCostPerHour"`
	MachineCostPerHour float64 `json:"machineCostPerHour"`
	MinimumOrder       int     `json:"minimumOrder"`
}

type RatePayload struct {
	UpdatedAt string     `json:"updated_at"`
	Source    string     `json:"source"`
	Currency  string     `json:"currency"`
	Items     []RateItem `json:"items"`
}

// RateCache holds one process-wide snapshot of the market rate table.
// The full payload is always what gets cached; filtering by material name
// happens on the way out and never refreshes or extends the window.
type RateCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	payload   *RatePayload
	expiresAt time.Time
}

func NewRateCache(ttl time.Duration, now func() time.Time) *RateCache {
	if ttl <= 0 {
		ttl = defaultRateTTL
	}
	if now == nil {
		now = time.Now
	}
	return &RateCache{ttl: ttl, now: now}
}

// RateTTLFromEnv reads MATERIAL_PRICE_CACHE_MINUTES, defaulting to 24 hours.
func RateTTLFromEnv() time.Duration {
	if v := os.Getenv("MATERIAL_PRICE_CACHE_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultRateTTL
}

// Get returns the cached payload while it is fresh, recomputing it from the
// static table otherwise. A non-empty materials list filters the result.
func (c *RateCache) Get(materials []string) RatePayload {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now().UTC()
	if c.payload == nil || !now.Before(c.expiresAt) {
		c.payload = buildPayload(now)
		c.expiresAt = now.Add(c.ttl)
	}

	return filterPayload(*c.payload, materials)
}

func buildPayload(now time.Time) *RatePayload {
	items := make([]RateItem, 0, len(marketRates))
	for i, rate := range marketRates {
		items = append(items, RateItem{
			ID:                 i + 1,
			Material:           rate.Material,
			CostPerKg:          rate.CostPerKg,
			LaborCostPerHour:   defaultLaborCostINR,
			MachineCostPerHour: defaultMachineCostINR,
			MinimumOrder:       rate.MinimumOrder,
		})
	}
	return &RatePayload{
		UpdatedAt: now.Format(time.RFC3339Nano),
		Source:    rateSource,
		Currency:  "INR",
		Items:     items,
	}
}

func filterPayload(p RatePayload, materials []string) RatePayload {
	if len(materials) == 0 {
		return p
	}
	wanted := make(map[string]bool, len(materials))
	for _, m := range materials {
		wanted[m] = true
	}
	filtered := make([]RateItem, 0, len(p.Items))
	for _, item := range p.Items {
		if wanted[item.Material] {
			filtered = append(filtered, item)
		}
	}
	p.Items = filtered
	return p
}
