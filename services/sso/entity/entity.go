package entity

import (
	"github.com/meetingmind/backend/services/sso/storage/postgres/ent"
)

func MakeUserEntToEntity(user *ent.User) *User {
	return &User{
		ID:        user.ID.String(),
		Name:      user.Name,
		Surname:   user.Surname,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func MakeProfileEntToEntity(profile *ent.Profile) *Profile {
	return &Profile{
		UserID:    profile.ID.String(),
		IsPro:     profile.IsPro,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
