// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain vocabulary of the site: choice sets,
// ordered-list field types, write inputs with their validation rules,
// the error taxonomy and the role capability matrix.
package model

// User roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Roles lists the valid user roles.
var Roles = []Choice{
	{Value: RoleAdmin, Label: "Admin"},
	{Value: RoleEditor, Label: "Editor"},
	{Value: RoleViewer, Label: "Viewer"},
}

// IsValidRole reports whether role is a known user role.
func IsValidRole(role string) bool {
	return inChoices(Roles, role)
}

// CanMutate reports whether the role may change site content at all.
// Only admins and editors mutate; viewers are read-only.
func CanMutate(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}

// UserInput is the write model for users managed from the admin API.
type UserInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	IsActive  bool   `json:"is_active"`
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 12

// Validate checks the user input. Password is only required on create.
func (in *UserInput) Validate(creating bool) error {
	v := newValidator()
	v.required("username", in.Username)
	v.maxLen("username", in.Username, 150)
	if in.Username != "" && !usernamePattern.MatchString(in.Username) {
		v.add("username", "Username may contain only letters, digits and @.+-_ characters.")
	}
	v.optionalEmail("email", in.Email)
	v.maxLen("first_name", in.FirstName, 150)
	v.maxLen("last_name", in.LastName, 150)
	v.maxLen("phone", in.Phone, 20)
	v.choice("role", in.Role, Roles, false)
	if creating || in.Password != "" {
		if len(in.Password) < MinPasswordLength {
			v.add("password", "Password must be at least 12 characters.")
		}
	}
	return v.err()
}
