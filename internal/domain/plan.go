package domain

import (
	"math"
	"strings"
)

// Plan describes a subscription tier. It gates dashboard quantity
// client-side as a soft check; real enforcement lives in the backend.
type Plan struct {
	Name           string   `json:"name"`
	Tier           string   `json:"tier,omitempty"`
	DashboardLimit int      `json:"dashboardLimit,omitempty"`
	Features       []string `json:"features,omitempty"`
}

// UnlimitedDashboards is the effective limit for top-tier plans.
const UnlimitedDashboards = math.MaxInt

// DashboardLimitFor maps a plan to its dashboard quota.
// Plans whose name mentions "scale" are unlimited, "growth" allows 5,
// anything else (including no plan at all) allows 1.
func DashboardLimitFor(plan *Plan) int {
	if plan == nil {
		return 1
	}
	key := strings.ToLower(plan.Name)
	if key == "" {
		key = strings.ToLower(plan.Tier)
	}
	switch {
	case strings.Contains(key, "scale"):
		return UnlimitedDashboards
	case strings.Contains(key, "growth"):
		return 5
	default:
		return 1
	}
}
