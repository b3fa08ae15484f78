// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It contains the identity information shared across all roles.
type User struct {
	ID              uuid.UUID        // The Global Unique Identifier (GUID) for the account.
	Email           string           // The account's primary contact email, used as the login identifier.
	Name            string           // The account's display name or real name.
	Role            Role             // The account's role: customer, retailer or admin.
	RetailerProfile *RetailerProfile // A pointer to the retailer-specific profile. Nil unless Role is retailer.
	CreatedAt       time.Time        // Timestamp of when this account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this account's data.
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsRetailer reports whether the account carries the retailer role.
func (u *User) IsRetailer() bool {
	return u.Role == RoleRetailer
}

// IsVerifiedRetailer reports whether the account is a retailer that an admin
// has verified. Only verified retailers may submit products.
func (u *User) IsVerifiedRetailer() bool {
	return u.Role == RoleRetailer && u.RetailerProfile != nil && u.RetailerProfile.IsVerified
}

// RetailerProfile holds data specific to the "retailer" role.
type RetailerProfile struct {
	UserID           uuid.UUID // Foreign Key that links this profile to a core User entity.
	StoreName        string    // The retailer's official store name.
	StoreDescription string    // A description of the store and its products.
	Phone            string    // The retailer's contact phone number.
	Address          Address   // The physical address of the retailer's store.
	BusinessLicense  string    // The retailer's official business license number.
	IsVerified       bool      // Whether an admin has verified this retailer. Defaults to false.
	UpdatedAt        time.Time // Timestamp of the last modification to this profile.
}

// Address is the postal address attached to a retailer profile.
type Address struct {
	Street  string
	City    string
	State   string
	Pincode string
}
