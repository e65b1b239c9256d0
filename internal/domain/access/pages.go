// Package access maps pages to roles. Navigation visibility and page resolution
// consult the same predicate so the two can never drift apart.
package access

import "github.com/interiorhq/interman-api/internal/domain/entity"

// Page identifiers the UI can request.
const (
	PageOverview       = "overview"
	PageInventory      = "inventory"
	PageCustomers      = "customers"
	PageProjects       = "projects"
	PageVendors        = "vendors"
	PageWorkers        = "workers"
	PageMaterialIssue  = "materialIssue"
	PageVendorPurchase = "vendorPurchase"
	PagePayments       = "payments"
	PageLogs           = "logs"
)

// NavEntry is one navigation item offered to a role.
type NavEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// pages lists every page in display order with its label and whether it is
// restricted to admins. This table is the single authorization source.
var pages = []struct {
	id        string
	label     string
	adminOnly bool
}{
	{PageOverview, "Overview", false},
	{PageInventory, "Inventory", false},
	{PageCustomers, "Customers", false},
	{PageProjects, "Projects", false},
	{PageVendors, "Vendors", false},
	{PageWorkers, "Workers", false},
	{PageMaterialIssue, "Material Issue", false},
	{PageVendorPurchase, "Vendor Purchase", false},
	{PagePayments, "Payments", false},
	{PageLogs, "Logs", true},
}

// Known reports whether pageID is a recognized page.
func Known(pageID string) bool {
	for _, p := range pages {
		if p.id == pageID {
			return true
		}
	}
	return false
}

// Allowed is the single role predicate: can role view pageID.
func Allowed(role, pageID string) bool {
	for _, p := range pages {
		if p.id == pageID {
			return !p.adminOnly || role == entity.RoleAdmin
		}
	}
	return false
}

// Resolve maps a requested page id plus a role to the page to render.
// Unknown ids fall back to overview (default-safe navigation); a known page the
// role may not view resolves to denied=true and the page is rendered as nothing.
func Resolve(pageID, role string) (page string, denied bool) {
	if !Known(pageID) {
		return PageOverview, false
	}
	if !Allowed(role, pageID) {
		return "", true
	}
	return pageID, false
}

// NavigationFor derives the navigation entries visible to a role from the same
// predicate Resolve uses.
func NavigationFor(role string) []NavEntry {
	entries := make([]NavEntry, 0, len(pages))
	for _, p := range pages {
		if Allowed(role, p.id) {
			entries = append(entries, NavEntry{ID: p.id, Label: p.label})
		}
	}
	return entries
}
