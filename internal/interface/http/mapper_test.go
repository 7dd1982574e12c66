package handlers

import (
	"testing"

	"github.com/xpnews/xpnews-backend/internal/domain/entity"
)

func TestToResponseStripsRolePrefix(t *testing.T) {
	cases := []struct {
		role entity.Role
		want string
	}{
		{entity.RoleAdmin, "ADMIN"},
		{entity.RoleClient, "CLIENT"},
	}
	for _, tc := range cases {
		u := &entity.User{ID: 1, FullName: "Rafael Andrade", Email: "rafa@gmail.com", Username: "rafa12", Role: tc.role}
		if got := toResponse(u).Role; got != tc.want {
			t.Errorf("role %q rendered as %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestToResponseCopiesFields(t *testing.T) {
	u := &entity.User{ID: 7, FullName: "Maria Silva", Email: "maria@gmail.com", Username: "mariaS", Password: "secret", Role: entity.RoleClient}
	res := toResponse(u)
	if res.ID != 7 || res.FullName != "Maria Silva" || res.Email != "maria@gmail.com" || res.Username != "mariaS" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestToUserDefaultsRole(t *testing.T) {
	u := toUser(userCreateRequest{FullName: "Rafael Andrade", Username: "rafa12", Email: "rafa@gmail.com", Password: "senha"})
	if u.Role != entity.RoleClient {
		t.Fatalf("role = %q, want %q", u.Role, entity.RoleClient)
	}
	if u.ID != 0 {
		t.Fatalf("new user must not carry an identifier, got %d", u.ID)
	}
}

func TestUpdateToUserCarriesRole(t *testing.T) {
	u := updateToUser(userUpdateRequest{FullName: "Carlos Oliveira", Username: "carlos123", Email: "carlos@gmail.com", Role: "ROLE_ADMIN"})
	if u.Role != entity.RoleAdmin {
		t.Fatalf("role = %q, want %q", u.Role, entity.RoleAdmin)
	}
}

func TestToResponseList(t *testing.T) {
	users := []*entity.User{
		{ID: 1, Username: "rafa12", Role: entity.RoleClient},
		{ID: 2, Username: "mariaS", Role: entity.RoleAdmin},
	}
	list := toResponseList(users)
	if len(list) != 2 || list[0].Role != "CLIENT" || list[1].Role != "ADMIN" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
