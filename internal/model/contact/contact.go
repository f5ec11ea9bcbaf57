package contact

import "time"

// Category classifies a contact into one of a fixed set of groups.
type Category string

const (
	CategoryFamily   Category = "family"
	CategoryFriend   Category = "friend"
	CategoryWork     Category = "work"
	CategoryBusiness Category = "business"
	CategoryOther    Category = "other"
)

// Categories returns the allowed categories in display order.
func Categories() []Category {
	return []Category{CategoryFamily, CategoryFriend, CategoryWork, CategoryBusiness, CategoryOther}
}

// ParseCategory validates a raw category value. Matching is exact and
// case-sensitive.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// Contact is a single address-book entry. The collection lives only in
// session memory and is discarded when the session ends.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Category  Category  `json:"category"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Fields holds the mutable, user-supplied part of a Contact. The
// validator produces normalized Fields; the store never sees raw input.
type Fields struct {
	Name     string
	Email    string
	Phone    string
	Category Category
	Address  string
}

// Fields returns the mutable part of the contact, e.g. for edit
// prefill.
func (c Contact) Fields() Fields {
	return Fields{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Category: c.Category,
		Address:  c.Address,
	}
}

// Filter narrows a listing. Zero values mean "no restriction".
type Filter struct {
	// Category must match exactly when set.
	Category string
	// Search matches case-insensitively against name, email and phone.
	Search string
}
