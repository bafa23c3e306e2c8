package model

// Role 使用者權限等級
type Role int

const (
	RoleMember Role = iota
	RoleAdmin
)

// AdminUserID users 表第一個 id，即管理員
const AdminUserID = 1

// RoleFor 依使用者 id 決定權限
func RoleFor(userID int) Role {
	if userID == AdminUserID {
		return RoleAdmin
	}
	return RoleMember
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleMember:
		return "member"
	default:
		return "unknown"
	}
}
