package services

import (
	"strings"

	"github.com/smoldovan/lunchroom/internal/models"
)

// NameFromEmail derives a display name from the local part of an email:
// dot-separated tokens, each capitalized, joined by spaces.
// "alexandru.popescu@firm.ro" becomes "Alexandru Popescu".
func NameFromEmail(email string) string {
	localPart := strings.TrimSpace(email)
	if at := strings.Index(localPart, "@"); at >= 0 {
		localPart = localPart[:at]
	}

	tokens := strings.Split(localPart, ".")
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		parts = append(parts, capitalizeToken(token))
	}
	return strings.Join(parts, " ")
}

// ReverseName swaps the two tokens of a "First Last" name; names with any
// other token count are returned unchanged. Covers spreadsheets ordered
// "Last First".
func ReverseName(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) != 2 {
		return name
	}
	return tokens[1] + " " + tokens[0]
}

// NormalizeName lowers, trims and collapses whitespace for case-insensitive
// matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// PlaceholderEmail synthesizes the sentinel address that keys a placeholder
// account: lowercase name tokens joined by dots at the placeholder domain.
func PlaceholderEmail(employeeName string) string {
	tokens := strings.Fields(strings.ToLower(employeeName))
	return strings.Join(tokens, ".") + "@" + models.PlaceholderEmailDomain
}

// nameIndex resolves free-text employee names to accounts. Lookup order is
// fixed: stored employee_name first, then the email-derived name, then its
// reversed two-token form. The first user to claim a key wins.
type nameIndex struct {
	byEmployeeName map[string]models.User
	byDerivedName  map[string]models.User
	byReversedName map[string]models.User
}

func buildNameIndex(users []models.User) *nameIndex {
	index := &nameIndex{
		byEmployeeName: make(map[string]models.User, len(users)),
		byDerivedName:  make(map[string]models.User, len(users)),
		byReversedName: make(map[string]models.User, len(users)),
	}

	for _, user := range users {
		if employeeName := NormalizeName(user.EmployeeName); employeeName != "" {
			if _, taken := index.byEmployeeName[employeeName]; !taken {
				index.byEmployeeName[employeeName] = user
			}
		}

		derived := NameFromEmail(user.Email)
		if derivedKey := NormalizeName(derived); derivedKey != "" {
			if _, taken := index.byDerivedName[derivedKey]; !taken {
				index.byDerivedName[derivedKey] = user
			}
			if reversedKey := NormalizeName(ReverseName(derived)); reversedKey != derivedKey {
				if _, taken := index.byReversedName[reversedKey]; !taken {
					index.byReversedName[reversedKey] = user
				}
			}
		}
	}

	return index
}

func (index *nameIndex) match(employeeName string) (models.User, bool) {
	key := NormalizeName(employeeName)
	if key == "" {
		return models.User{}, false
	}
	if user, found := index.byEmployeeName[key]; found {
		return user, true
	}
	if user, found := index.byDerivedName[key]; found {
		return user, true
	}
	if user, found := index.byReversedName[key]; found {
		return user, true
	}
	return models.User{}, false
}

func capitalizeToken(token string) string {
	if token == "" {
		return token
	}
	return strings.ToUpper(token[:1]) + token[1:]
}
