package handlers

import (
	"strings"

	"github.com/xpnews/xpnews-backend/internal/domain/entity"
)

// rolePrefix is stripped from the stored enumerant for external display.
// Stored roles are assumed to carry it; the mapping does not validate that.
const rolePrefix = "ROLE_"

// toUser builds a new unpersisted user from the creation payload. The role is
// not part of the payload and defaults to ROLE_CLIENT.
func toUser(req userCreateRequest) *entity.User {
	return entity.NewUser(req.FullName, req.Username, req.Email, req.Password, "")
}

// updateToUser carries the full-update payload as a transient user value; only
// the fields the service overwrites are meaningful.
func updateToUser(req userUpdateRequest) *entity.User {
	return entity.NewUser(req.FullName, req.Username, req.Email, "", entity.Role(req.Role))
}

func toResponse(u *entity.User) userResponse {
	return userResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Username: u.Username,
		Role:     strings.TrimPrefix(string(u.Role), rolePrefix),
	}
}

func toResponseList(users []*entity.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toResponse(u))
	}
	return out
}
