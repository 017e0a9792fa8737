package response

import "github.com/Guyuepp/bloggers-platform/domain"

type BanInfo struct {
	IsBanned  bool    `json:"isBanned"`
	BanDate   *string `json:"banDate"`
	BanReason *string `json:"banReason"`
}

type User struct {
	ID        string  `json:"id"`
	Login     string  `json:"login"`
	Email     string  `json:"email"`
	CreatedAt string  `json:"createdAt"`
	BanInfo   BanInfo `json:"banInfo"`
}

// NewUserFromDomain: Domain -> Response
func NewUserFromDomain(u *domain.User) User {
	return User{
		ID:        formatID(u.ID),
		Login:     u.Login,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
		BanInfo: BanInfo{
			IsBanned:  u.Ban.IsBanned,
			BanDate:   formatTimePtr(u.Ban.BanDate),
			BanReason: u.Ban.BanReason,
		},
	}
}

// BannedUser is one entry of a blog's ban list.
type BannedUser struct {
	ID      string  `json:"id"`
	Login   string  `json:"login"`
	BanInfo BanInfo `json:"banInfo"`
}

func NewBannedUserFromDomain(b *domain.BlogBan) BannedUser {
	return BannedUser{
		ID:    formatID(b.UserID),
		Login: b.UserLogin,
		BanInfo: BanInfo{
			IsBanned:  b.IsBanned,
			BanDate:   formatTimePtr(b.BanDate),
			BanReason: b.BanReason,
		},
	}
}

type Me struct {
	Email  string `json:"email"`
	Login  string `json:"login"`
	UserID string `json:"userId"`
}

func NewMeFromDomain(u *domain.User) Me {
	return Me{
		Email:  u.Email,
		Login:  u.Login,
		UserID: formatID(u.ID),
	}
}

type AccessToken struct {
	AccessToken string `json:"accessToken"`
}

type Device struct {
	IP             string `json:"ip"`
	Title          string `json:"title"`
	LastActiveDate string `json:"lastActiveDate"`
	DeviceID       string `json:"deviceId"`
}

func NewDeviceFromDomain(d *domain.DeviceSession) Device {
	return Device{
		IP:             d.IP,
		Title:          d.Title,
		LastActiveDate: formatTime(d.LastActiveDate),
		DeviceID:       d.DeviceID,
	}
}
