package dto

import "anoa.com/clanportal/internal/model"

// ClanDetail is the clan page payload: the clan itself, its accepted
// members, and its own announcements.
type ClanDetail struct {
	Clan          *model.Clan           `json:"clan"`
	Members       []*model.User         `json:"members"`
	Announcements []*model.Announcement `json:"announcements"`
}
