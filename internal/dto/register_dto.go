package dto

type RegisterInput struct {
	Name      string `json:"name" binding:"required,min=2,max=50"`
	Phone     string `json:"phone" binding:"required,max=30"`
	DiscordID string `json:"discord_id" binding:"omitempty,max=50"`
	Age       int    `json:"age" binding:"required,gte=13,lte=100"`
	Bio       string `json:"bio" binding:"max=500"`
	Reason    string `json:"reason" binding:"required,max=500"`
	ClanID    string `json:"clan_id" binding:"required,uuid"`
	Avatar    string `json:"avatar" binding:"omitempty,url"`
}
