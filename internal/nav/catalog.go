package nav

import (
	"github.com/Tharusha999/isdn-sub001/internal/auth"
)

// Entry is one navigation destination in the dashboard sidebar.
type Entry struct {
	Label       string `json:"label"`
	Destination string `json:"destination"`
	Icon        string `json:"icon"`
}

// Labels double as the keys of the per-role visibility sets.
const (
	LabelDashboard = "Dashboard"
	LabelProducts  = "Products"
	LabelOrders    = "Orders"
	LabelDelivery  = "Delivery"
	LabelStaff     = "Staff"
	LabelPartners  = "Partners"
	LabelActivity  = "Activity"
	LabelSettings  = "Settings"
)

// catalog is the full ordered navigation catalog. It is never
// mutated; per-role views are filtered copies.
var catalog = []Entry{
	{Label: LabelDashboard, Destination: "/dashboard", Icon: "home"},
	{Label: LabelProducts, Destination: "/products", Icon: "box"},
	{Label: LabelOrders, Destination: "/orders", Icon: "cart"},
	{Label: LabelDelivery, Destination: "/delivery", Icon: "truck"},
	{Label: LabelStaff, Destination: "/staff", Icon: "users"},
	{Label: LabelPartners, Destination: "/partners", Icon: "handshake"},
	{Label: LabelActivity, Destination: "/activity", Icon: "pulse"},
	{Label: LabelSettings, Destination: "/settings", Icon: "gear"},
}

// Catalog returns a copy of the full navigation catalog.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

const (
	redirectDashboard = "/dashboard"
	redirectProducts  = "/products"
)

// rolePolicy is the single mapping from role to navigation visibility
// and post-login redirect. A nil visible set means the full catalog.
type rolePolicy struct {
	visible  map[string]bool
	redirect string
}

var rolePolicies = map[auth.Role]rolePolicy{
	auth.RoleAdmin: {
		visible:  nil, // full catalog
		redirect: redirectDashboard,
	},
	auth.RoleDriver: {
		visible: map[string]bool{
			LabelDashboard: true,
			LabelDelivery:  true,
			LabelSettings:  true,
		},
		redirect: redirectDashboard,
	},
	auth.RoleCustomer: {
		visible: map[string]bool{
			LabelDashboard: true,
			LabelProducts:  true,
			LabelOrders:    true,
			LabelSettings:  true,
		},
		redirect: redirectProducts,
	},
}

// policyFor resolves the mapping for a role. An authenticated account
// with a role outside the closed set sees the full catalog but is
// sent to the customer landing page.
func policyFor(role auth.Role) rolePolicy {
	if p, ok := rolePolicies[role]; ok {
		return p
	}
	return rolePolicy{visible: nil, redirect: redirectProducts}
}

// VisibleEntries filters the catalog for a role, preserving order.
func VisibleEntries(role auth.Role) []Entry {
	p := policyFor(role)
	if p.visible == nil {
		return Catalog()
	}

	out := make([]Entry, 0, len(p.visible))
	for _, e := range catalog {
		if p.visible[e.Label] {
			out = append(out, e)
		}
	}
	return out
}

// RedirectPath is the post-authentication landing page for a role.
func RedirectPath(role auth.Role) string {
	return policyFor(role).redirect
}

// CanAccess reports whether a role may reach a destination path. The
// route gate mirrors navigation visibility: what the sidebar hides,
// the routes refuse.
func CanAccess(role auth.Role, destination string) bool {
	p := policyFor(role)
	if p.visible == nil {
		return true
	}
	for _, e := range catalog {
		if e.Destination == destination {
			return p.visible[e.Label]
		}
	}
	// Unknown destinations are not part of the gated catalog.
	return true
}
