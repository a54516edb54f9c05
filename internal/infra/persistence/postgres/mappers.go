package postgres

import (
	"mapnmeet/internal/domain/entity"
	"mapnmeet/internal/infra/persistence/model"

	"github.com/paulmach/orb"
)

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Contact:   m.Contact,
		Bio:       m.Bio,
		Instagram: m.Instagram,
		ImageURL:  m.ImageURL,
		Admin:     m.Admin,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// toUserSummary maps a loaded user row onto the public card projection
// embedded in activity reads.
func toUserSummary(m *model.UserModel) *entity.UserSummary {
	if m == nil {
		return nil
	}

	return &entity.UserSummary{
		ID:       m.ID,
		Name:     m.Name,
		Contact:  m.Contact,
		ImageURL: m.ImageURL,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Contact:   u.Contact,
		Bio:       u.Bio,
		Instagram: u.Instagram,
		ImageURL:  u.ImageURL,
		Admin:     u.Admin,
		Active:    u.Active,
	}
}

func toAuthDomain(m *model.AuthenticationModel) *entity.Authentication {
	return &entity.Authentication{
		ID:             m.ID,
		UserID:         m.UserID,
		Provider:       entity.ProviderType(m.Provider),
		ProviderUserID: m.ProviderUserID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toActivityDomain(m *model.ActivityModel) *entity.Activity {
	activity := &entity.Activity{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		LocationName:    m.LocationName,
		Location:        orb.Point{m.Longitude, m.Latitude},
		StartsAt:        m.StartsAt,
		EndsAt:          m.EndsAt,
		MaxParticipants: m.MaxParticipants,
		ContactInfo:     m.ContactInfo,
		CreatedBy:       m.CreatedBy,
		Status:          entity.ActivityStatus(m.Status),
		CancelledAt:     m.CancelledAt,
		ExpiresAt:       m.ExpiresAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		Creator:         toUserSummary(m.Creator),
	}

	for _, p := range m.Participants {
		if p.User != nil {
			activity.Joinees = append(activity.Joinees, toUserSummary(p.User))
		}
	}

	return activity
}

func fromActivityDomain(a *entity.Activity) *model.ActivityModel {
	return &model.ActivityModel{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		LocationName:    a.LocationName,
		Longitude:       a.Location.Lon(),
		Latitude:        a.Location.Lat(),
		StartsAt:        a.StartsAt,
		EndsAt:          a.EndsAt,
		MaxParticipants: a.MaxParticipants,
		ContactInfo:     a.ContactInfo,
		CreatedBy:       a.CreatedBy,
		Status:          string(a.Status),
		CancelledAt:     a.CancelledAt,
		ExpiresAt:       a.ExpiresAt,
	}
}

func toNotificationDomain(m *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:         m.ID,
		UserID:     m.UserID,
		Type:       entity.NotificationType(m.Type),
		ActivityID: m.ActivityID,
		FollowerID: m.FollowerID,
		Message:    m.Message,
		Read:       m.Read,
		ReadAt:     m.ReadAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromNotificationDomain(n *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:         n.ID,
		UserID:     n.UserID,
		Type:       string(n.Type),
		ActivityID: n.ActivityID,
		FollowerID: n.FollowerID,
		Message:    n.Message,
		Read:       n.Read,
		ReadAt:     n.ReadAt,
	}
}
