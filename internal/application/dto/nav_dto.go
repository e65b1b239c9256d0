package dto

// PageEntry one navigation item visible to the signed-in role.
type PageEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NavigationResponse the navigation menu for a role.
type NavigationResponse struct {
	Items []PageEntry `json:"items"`
}

// ResolvePageResponse result of resolving a requested page against the role.
// An unknown page id resolves to overview; a known-but-forbidden page id sets
// Denied and leaves Page empty.
type ResolvePageResponse struct {
	Page   string `json:"page"`
	Denied bool   `json:"denied"`
}
