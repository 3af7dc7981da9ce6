package console

// VisibleMenuItems filters the fixed menu table down to the items whose
// allowed-role set contains the user's role. Roles are compared after
// normalization, so matching is effectively case-insensitive exact match.
// Without a profile nothing is visible; that is an empty menu, not an error.
func VisibleMenuItems(profile *UserProfile) []MenuItem {
	if profile == nil {
		return []MenuItem{}
	}
	return visibleMenuItemsForRole(NormalizeRole(string(profile.Role)))
}

func visibleMenuItemsForRole(role UserRole) []MenuItem {
	visibleItems := make([]MenuItem, 0, len(DefaultMenu))
	if role == "" {
		return visibleItems
	}
	for _, item := range DefaultMenu {
		if containsRole(item.Roles, role) {
			visibleItems = append(visibleItems, item)
		}
	}
	return visibleItems
}

func containsRole(roles []UserRole, target UserRole) bool {
	for i := 0; i < len(roles); i++ {
		if roles[i] == target {
			return true
		}
	}
	return false
}
