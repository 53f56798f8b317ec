// Package refs resolves display names for foreign ids at write time.
// Names are copied into the dependent record and never re-synchronized.
package refs

import "multibranch-backend/internal/models"

// Name looks id up in records and returns its display name, or fallback
// when no record has that id.
func Name[T any](id string, records []T, idOf, nameOf func(T) string, fallback string) string {
	if id == "" {
		return fallback
	}
	for _, r := range records {
		if idOf(r) == id {
			return nameOf(r)
		}
	}
	return fallback
}

func BranchName(branches []models.Branch, id, fallback string) string {
	return Name(id, branches,
		func(b models.Branch) string { return b.ID },
		func(b models.Branch) string { return b.Name },
		fallback)
}

func UserName(users []models.User, id, fallback string) string {
	return Name(id, users,
		func(u models.User) string { return u.ID },
		func(u models.User) string { return u.Name },
		fallback)
}

// UserIDByName finds the id of the fixture user with exactly this display name.
func UserIDByName(users []models.User, name string) (string, bool) {
	for _, u := range users {
		if u.Name == name {
			return u.ID, true
		}
	}
	return "", false
}
