package dto

import "anoa.com/clanportal/internal/model"

type SetRoleInput struct {
	Role string `json:"role" binding:"required"`
}

type AdminData struct {
	Users []*model.User `json:"users"`
	Clans []*model.Clan `json:"clans"`
}
