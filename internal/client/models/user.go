// Package models defines the resource shapes exchanged with the community
// backing store. Field names follow the store's JSON contract.
package models

// User is a community member record.
//
// Password is only ever populated on records fetched by the login flow; the
// backing store keeps it in plaintext, which is an inherited weakness of the
// store, not something the client can fix. The copy held by the session store
// must have Password cleared.
type User struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name"`
	Email      string `json:"email" validate:"required"`
	Avatar     string `json:"avatar,omitempty"`
	Address    string `json:"address,omitempty"`
	JoinDate   string `json:"joinDate,omitempty"`
	IsVerified bool   `json:"isVerified,omitempty"`
	Password   string `json:"password,omitempty"`
}
