package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/interiorhq/interman-api/internal/domain/entity"
)

func TestResolve_LogsGatedByRole(t *testing.T) {
	page, denied := Resolve(PageLogs, entity.RoleAdmin)
	assert.False(t, denied)
	assert.Equal(t, PageLogs, page)

	page, denied = Resolve(PageLogs, entity.RoleEmployee)
	assert.True(t, denied, "employee must be denied the logs page")
	assert.Empty(t, page, "denial renders as nothing, not an error page")
}

func TestResolve_UnknownFallsBackToOverview(t *testing.T) {
	page, denied := Resolve("reports", entity.RoleEmployee)
	assert.False(t, denied)
	assert.Equal(t, PageOverview, page)

	page, denied = Resolve("", entity.RoleAdmin)
	assert.False(t, denied)
	assert.Equal(t, PageOverview, page)
}

func TestResolve_RegularPagesOpenToBothRoles(t *testing.T) {
	for _, id := range []string{
		PageOverview, PageInventory, PageCustomers, PageProjects,
		PageVendors, PageWorkers, PageMaterialIssue, PageVendorPurchase, PagePayments,
	} {
		for _, role := range []string{entity.RoleAdmin, entity.RoleEmployee} {
			page, denied := Resolve(id, role)
			assert.False(t, denied, "%s should be open to %s", id, role)
			assert.Equal(t, id, page)
		}
	}
}

func TestNavigationFor_LogsEntryOnlyForAdmin(t *testing.T) {
	adminNav := NavigationFor(entity.RoleAdmin)
	employeeNav := NavigationFor(entity.RoleEmployee)

	assert.Len(t, adminNav, 10)
	assert.Len(t, employeeNav, 9)
	assert.Equal(t, "logs", adminNav[len(adminNav)-1].ID)
	for _, e := range employeeNav {
		assert.NotEqual(t, "logs", e.ID)
	}
}

// Visibility in the navigation and resolvability must always agree; both come
// from Allowed, so walking every page for every role should never disagree.
func TestNavigationMatchesResolver(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleEmployee} {
		visible := map[string]bool{}
		for _, e := range NavigationFor(role) {
			visible[e.ID] = true
		}
		for _, p := range pages {
			_, denied := Resolve(p.id, role)
			assert.Equal(t, visible[p.id], !denied,
				"nav visibility and resolver must agree for %s/%s", role, p.id)
		}
	}
}
