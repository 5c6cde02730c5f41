// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Entity names the content type of an admin operation. The same names are
// written to activity_logs.content_type.
type Entity string

// Entities managed by the admin layer.
const (
	EntityUser         Entity = "user"
	EntitySiteSettings Entity = "site_settings"
	EntityAbout        Entity = "about_us"
	EntitySolution     Entity = "solution"
	EntityInquiry      Entity = "contact_inquiry"
	EntityFeedback     Entity = "feedback"
	EntityBlogPost     Entity = "blog_post"
	EntityArticle      Entity = "article"
	EntityEvent        Entity = "event"
	EntityRegistration Entity = "event_registration"
	EntityGalleryItem  Entity = "gallery_item"
	EntityNewsletter   Entity = "newsletter"
	EntityTeamMember   Entity = "team_member"
	EntityActivityLog  Entity = "activity_log"
	EntityMedia        Entity = "media"
)

// Operation is a mutation kind checked against the capability matrix.
type Operation string

// Operations.
const (
	OpCreate Operation = "create"
	OpEdit   Operation = "edit"
	OpDelete Operation = "delete"
)

// Can reports whether role may perform op on entity.
//
// Viewers and unknown roles can do nothing. Editors manage content but not
// users, settings or the about record. Admins manage everything except that
// the settings singleton is never deleted. The activity log is append-only
// and nobody mutates it through the admin layer.
func Can(role string, op Operation, entity Entity) bool {
	if !CanMutate(role) || entity == EntityActivityLog {
		return false
	}
	if entity == EntitySiteSettings && op == OpDelete {
		return false
	}
	if role == RoleAdmin {
		return true
	}
	switch entity {
	case EntityUser, EntitySiteSettings, EntityAbout:
		return false
	}
	return true
}

// CanCreate reports whether role may create entity.
func CanCreate(role string, entity Entity) bool { return Can(role, OpCreate, entity) }

// CanEdit reports whether role may edit entity.
func CanEdit(role string, entity Entity) bool { return Can(role, OpEdit, entity) }

// CanDelete reports whether role may delete entity.
func CanDelete(role string, entity Entity) bool { return Can(role, OpDelete, entity) }
